package localeinfo

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// LocaleDetector reports the locale used for "localized" display names.
type LocaleDetector interface {
	DetectLocale() (language.Tag, error)
}

// fallbackDefaultLocale is used when nothing usable is found in the environment.
var fallbackDefaultLocale = language.AmericanEnglish

// localeEnvVars are consulted in priority order.
var localeEnvVars = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// EnvLocaleDetector derives the default locale from the POSIX locale variables.
type EnvLocaleDetector struct {
	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(key string) (string, bool)
}

var _ LocaleDetector = EnvLocaleDetector{}

// DetectLocale implements LocaleDetector. It never fails; unusable values fall back
// to en-US.
func (d EnvLocaleDetector) DetectLocale() (language.Tag, error) {
	lookup := d.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}

	for _, key := range localeEnvVars {
		value, ok := lookup(key)
		if !ok {
			continue
		}
		if tag, ok := parsePosixLocale(value); ok {
			return tag, nil
		}
	}
	return fallbackDefaultLocale, nil
}

// parsePosixLocale accepts values such as "de_DE.UTF-8" or "sr_RS@latin".
func parsePosixLocale(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if idx := strings.IndexAny(value, ".@"); idx >= 0 {
		value = value[:idx]
	}
	if value == "" || value == "C" || value == "POSIX" {
		return language.Und, false
	}

	tag, err := DefaultNormalizer{}.Normalize(value)
	if err != nil || tag.IsRoot() {
		return language.Und, false
	}
	return tag, true
}

// StaticLocaleDetector always reports the same locale.
type StaticLocaleDetector struct {
	Tag language.Tag
}

// DetectLocale implements LocaleDetector.
func (d StaticLocaleDetector) DetectLocale() (language.Tag, error) {
	return d.Tag, nil
}
