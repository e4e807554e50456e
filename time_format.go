package localeinfo

// LocaleTimeFormat writes the short or medium time pattern of locale into buf.
// Patterns use CLDR pattern syntax, e.g. "h:mm a" or "HH:mm:ss".
func (s *Service) LocaleTimeFormat(locale string, shortFormat bool, buf *Buffer) error {
	tag, err := s.Normalize(locale)
	if err != nil {
		return err
	}

	style := StyleMedium
	if shortFormat {
		style = StyleShort
	}

	format, err := s.backend.OpenDateFormat(tag, style, StyleNone)
	if err != nil {
		return err
	}
	defer format.Close()

	pattern, err := format.Pattern()
	if err != nil {
		return err
	}
	return buf.Write(pattern)
}
