package localeinfo

import (
	"fmt"
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// rootLocaleKey names the root bundle every inheritance chain ends with.
const rootLocaleKey = "root"

// LocaleCatalog is an immutable snapshot of the locale data known to the backend.
type LocaleCatalog struct {
	locales  map[string]LocaleData
	codes    []string
	resolver FallbackResolver
}

// NewLocaleCatalog merges overlays over base, keyed by locale identifier. The result
// must contain a "root" entry.
func NewLocaleCatalog(base, overlays map[string]LocaleData, resolver FallbackResolver) (*LocaleCatalog, error) {
	locales := make(map[string]LocaleData, len(base)+len(overlays))

	for _, source := range []map[string]LocaleData{base, overlays} {
		for originalCode, data := range source {
			code := canonicalLocaleName(originalCode)
			if code == "" {
				return nil, fmt.Errorf("locale catalog: empty locale code")
			}
			entry, exists := locales[code]
			if !exists {
				locales[code] = data.clone()
				continue
			}
			mergeLocaleData(&entry, data)
			locales[code] = entry
		}
	}

	if _, ok := locales[rootLocaleKey]; !ok {
		return nil, fmt.Errorf("locale catalog: %q locale not defined", rootLocaleKey)
	}

	for code, data := range locales {
		if data.NumberingSystem == "" {
			continue
		}
		if _, ok := numberingSystemDigits[data.NumberingSystem]; !ok {
			return nil, fmt.Errorf("locale catalog: %q uses unknown numbering system %q", code, data.NumberingSystem)
		}
	}

	codes := make([]string, 0, len(locales))
	for code := range locales {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	return &LocaleCatalog{
		locales:  locales,
		codes:    codes,
		resolver: resolver,
	}, nil
}

// Codes returns every locale in the catalog, sorted alphabetically.
func (c *LocaleCatalog) Codes() []string {
	if c == nil || len(c.codes) == 0 {
		return nil
	}
	out := make([]string, len(c.codes))
	copy(out, c.codes)
	return out
}

// Has reports whether the catalog holds data for exactly this locale.
func (c *LocaleCatalog) Has(locale string) bool {
	if c == nil {
		return false
	}
	_, ok := c.locales[canonicalLocaleName(locale)]
	return ok
}

// Data returns a copy of the data stored for exactly this locale.
func (c *LocaleCatalog) Data(locale string) (LocaleData, bool) {
	if c == nil {
		return LocaleData{}, false
	}
	data, ok := c.locales[canonicalLocaleName(locale)]
	if !ok {
		return LocaleData{}, false
	}
	return data.clone(), true
}

// DisplayName returns the English name of a catalog locale.
func (c *LocaleCatalog) DisplayName(locale string) string {
	code := canonicalLocaleName(locale)
	if code == rootLocaleKey {
		return "Root"
	}
	tag, err := language.Parse(code)
	if err != nil {
		return ""
	}
	return display.English.Tags().Name(tag)
}

// Chain lists the catalog locales consulted for tag, most specific first: the locale
// and each of its parents, each followed by its configured fallbacks and their
// parents, then root.
func (c *LocaleCatalog) Chain(tag language.Tag) []string {
	if c == nil {
		return nil
	}

	seen := make(map[string]struct{}, 6)
	chain := make([]string, 0, 6)
	appendLocale := func(value string) {
		if value == "" {
			return
		}
		if _, ok := seen[value]; ok {
			return
		}
		seen[value] = struct{}{}
		if _, ok := c.locales[value]; ok {
			chain = append(chain, value)
		}
	}

	name := LocaleName(tag)
	candidates := append([]string{name}, localeParentChain(tag)...)
	for _, candidate := range candidates {
		appendLocale(candidate)
		if c.resolver == nil || candidate == "" {
			continue
		}
		for _, fallback := range c.resolver.Resolve(candidate) {
			appendLocale(fallback)
			if fallbackTag, err := language.Parse(fallback); err == nil {
				for _, parent := range localeParentChain(fallbackTag) {
					appendLocale(parent)
				}
			}
		}
	}

	appendLocale(rootLocaleKey)
	return chain
}

// Resolve flattens the inheritance chain of tag into a single LocaleData.
func (c *LocaleCatalog) Resolve(tag language.Tag) LocaleData {
	chain := c.Chain(tag)
	var resolved LocaleData
	for i := len(chain) - 1; i >= 0; i-- {
		mergeLocaleData(&resolved, c.locales[chain[i]])
	}
	return resolved
}
