package localeinfo

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// fieldNumberSymbols maps fields answered by a single number format symbol.
var fieldNumberSymbols = map[LocaleStringField]NumberSymbol{
	ListSeparator:             SymbolGroupingSeparator,
	DecimalSeparator:          SymbolDecimalSeparator,
	ThousandSeparator:         SymbolGroupingSeparator,
	MonetarySymbol:            SymbolCurrency,
	Iso4217MonetarySymbol:     SymbolIntlCurrency,
	MonetaryDecimalSeparator:  SymbolMonetarySeparator,
	MonetaryThousandSeparator: SymbolMonetaryGroupingSeparator,
	PositiveSign:              SymbolPlusSign,
	NegativeSign:              SymbolMinusSign,
	NaNSymbol:                 SymbolNaN,
	PositiveInfinitySymbol:    SymbolInfinity,
	PercentSymbol:             SymbolPercent,
	PerMilleSymbol:            SymbolPerMill,
}

// LocaleInfoString writes the requested field of locale into buf. The value must fit
// with its terminator; otherwise a *CapacityError is returned and buf is untouched,
// except for Digits which may leave earlier digits written unless atomic digits are
// configured.
func (s *Service) LocaleInfoString(locale string, field LocaleStringField, buf *Buffer) error {
	tag, err := s.Normalize(locale)
	if err != nil {
		return err
	}

	if field == Digits {
		return s.writeDigits(tag, buf)
	}

	value, err := s.lookupField(tag, field)
	if err != nil {
		return err
	}
	return buf.Write(value)
}

func (s *Service) lookupField(tag language.Tag, field LocaleStringField) (string, error) {
	if symbol, ok := fieldNumberSymbols[field]; ok {
		return s.numberSymbol(tag, symbol)
	}

	switch field {
	case LocalizedDisplayName:
		return s.localizedName(tag, display.Tags, tag)
	case EnglishDisplayName:
		return nameOrCode(display.English.Tags().Name(tag), tag), nil
	case NativeDisplayName:
		return nameOrCode(nativeDisplayName(tag), tag), nil
	case LocalizedLanguageName:
		base, _ := tag.Base()
		return s.localizedName(tag, display.Languages, base)
	case EnglishLanguageName:
		base, _ := tag.Base()
		return nameOrBase(display.English.Languages().Name(base), tag), nil
	case NativeLanguageName:
		base, _ := tag.Base()
		return nameOrBase(display.Self.Name(base), tag), nil
	case EnglishCountryName:
		return regionName(display.English.Regions(), tag), nil
	case NativeCountryName:
		return regionName(display.Regions(tag), tag), nil
	case CurrencyEnglishName:
		return s.currencyName(tag, true)
	case CurrencyNativeName:
		return s.currencyName(tag, false)
	case AMDesignator:
		return s.dayPeriod(tag, 0)
	case PMDesignator:
		return s.dayPeriod(tag, 1)
	case Iso639LanguageTwoLetterName:
		return isoLanguageTwoLetter(tag), nil
	case Iso639LanguageThreeLetterName:
		return isoLanguageThreeLetter(tag)
	case Iso3166CountryName:
		return isoRegionTwoLetter(tag), nil
	case Iso3166CountryName2:
		return isoRegionThreeLetter(tag)
	case ParentName:
		return FixupLocaleName(LocaleName(ParentLocale(tag))), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedField, field)
	}
}

// writeDigits stores the ten digit glyphs at slots 0 through 9, stopping at the first
// failed lookup.
func (s *Service) writeDigits(tag language.Tag, buf *Buffer) error {
	format, err := s.backend.OpenNumberFormat(tag)
	if err != nil {
		return err
	}
	defer format.Close()

	target := buf
	if s.atomicDigits {
		target = NewBuffer(buf.Cap())
	}

	for digit := 0; digit < 10; digit++ {
		glyph, err := format.Symbol(DigitSymbol(digit))
		if err != nil {
			return fmt.Errorf("digit %d: %w", digit, err)
		}
		if err := target.WriteAt(digit, glyph); err != nil {
			return err
		}
	}

	if s.atomicDigits {
		return buf.commit(target)
	}
	return nil
}

func (s *Service) numberSymbol(tag language.Tag, symbol NumberSymbol) (string, error) {
	format, err := s.backend.OpenNumberFormat(tag)
	if err != nil {
		return "", err
	}
	defer format.Close()

	return format.Symbol(symbol)
}

// dayPeriod asks for medium time, the default time style. Backends serve no date
// patterns, so the date style is none.
func (s *Service) dayPeriod(tag language.Tag, index int) (string, error) {
	format, err := s.backend.OpenDateFormat(tag, StyleMedium, StyleNone)
	if err != nil {
		return "", err
	}
	defer format.Close()

	return format.DayPeriod(index)
}

func (s *Service) currencyName(tag language.Tag, english bool) (string, error) {
	unit, err := s.backend.CurrencyForLocale(tag)
	if err != nil {
		return "", err
	}
	nameTag := tag
	if english {
		nameTag = englishCurrencyLocale
	}
	return s.backend.CurrencyName(unit, nameTag)
}

// localizedName names x in the default locale, or in English when display has no
// namer for it.
func (s *Service) localizedName(tag language.Tag, namerFor func(language.Tag) display.Namer, x any) (string, error) {
	if tag.IsRoot() {
		return "", nil
	}
	defaultTag, err := s.DefaultLocale()
	if err != nil {
		return "", err
	}

	namer := namerFor(defaultTag)
	if namer == nil {
		namer = namerFor(language.English)
	}
	if namer == nil {
		return nameOrCode("", tag), nil
	}

	name := namer.Name(x)
	if _, isBase := x.(language.Base); isBase {
		return nameOrBase(name, tag), nil
	}
	return nameOrCode(name, tag), nil
}

// nativeDisplayName names tag in its own language, region included.
func nativeDisplayName(tag language.Tag) string {
	if namer := display.Tags(tag); namer != nil {
		if name := namer.Name(tag); name != "" {
			return name
		}
	}
	return display.Self.Name(tag)
}

func nameOrCode(name string, tag language.Tag) string {
	if tag.IsRoot() {
		return ""
	}
	if name != "" {
		return name
	}
	return LocaleName(tag)
}

func nameOrBase(name string, tag language.Tag) string {
	if tag.IsRoot() {
		return ""
	}
	if name != "" {
		return name
	}
	return isoLanguageTwoLetter(tag)
}

// regionName is empty when the locale has no explicit region.
func regionName(namer display.Namer, tag language.Tag) string {
	_, _, region := tag.Raw()
	if region == emptyRegion {
		return ""
	}
	if namer != nil {
		if name := namer.Name(region); name != "" {
			return name
		}
	}
	return region.String()
}
