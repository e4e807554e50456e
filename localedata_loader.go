package localeinfo

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LocaleDataLoader reads locale data files that are layered over the generated bundles.
// Files hold a map keyed by locale identifier; override files hold a single locale.
type LocaleDataLoader struct {
	paths     []string
	overrides map[string]string
}

// NewLocaleDataLoader creates a loader for the given JSON or YAML files.
func NewLocaleDataLoader(paths ...string) *LocaleDataLoader {
	return &LocaleDataLoader{
		paths:     append([]string(nil), paths...),
		overrides: make(map[string]string),
	}
}

// AddOverride registers a file holding the data of a single locale.
func (l *LocaleDataLoader) AddOverride(locale, path string) {
	if l == nil {
		return
	}
	if l.overrides == nil {
		l.overrides = make(map[string]string)
	}
	l.overrides[canonicalLocaleName(locale)] = path
}

// Paths returns the configured data files, overrides excluded.
func (l *LocaleDataLoader) Paths() []string {
	if l == nil {
		return nil
	}
	return append([]string(nil), l.paths...)
}

// Load decodes every configured file. Later files take precedence field by field and
// overrides are applied last.
func (l *LocaleDataLoader) Load() (map[string]LocaleData, error) {
	if l == nil {
		return nil, nil
	}

	result := make(map[string]LocaleData)
	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("localeinfo: read %s: %w", path, err)
		}

		var bundle map[string]LocaleData
		if err := decodeLocaleDataFile(path, data, &bundle); err != nil {
			return nil, fmt.Errorf("localeinfo: decode %s: %w", path, err)
		}
		if len(bundle) == 0 {
			return nil, fmt.Errorf("localeinfo: decode %s: no locales defined", path)
		}
		mergeLocaleBundles(result, bundle)
	}

	locales := make([]string, 0, len(l.overrides))
	for locale := range l.overrides {
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	for _, locale := range locales {
		path := l.overrides[locale]
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("localeinfo: load override for %q: %w", locale, err)
		}

		var override LocaleData
		if err := decodeLocaleDataFile(path, data, &override); err != nil {
			return nil, fmt.Errorf("localeinfo: parse override for %q: %w", locale, err)
		}
		mergeLocaleBundles(result, map[string]LocaleData{locale: override})
	}

	return result, nil
}

func decodeLocaleDataFile(path string, data []byte, target any) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return json.Unmarshal(data, target)
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, target); err != nil {
			return fmt.Errorf("yaml parse error: %w", err)
		}
		return nil
	case "":
		return errors.New("missing file extension")
	default:
		return fmt.Errorf("unsupported file extension %q", ext)
	}
}

func mergeLocaleBundles(dst, src map[string]LocaleData) {
	for originalCode, data := range src {
		code := canonicalLocaleName(originalCode)
		entry := dst[code]
		mergeLocaleData(&entry, data)
		dst[code] = entry
	}
}
