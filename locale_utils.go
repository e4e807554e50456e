package localeinfo

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/language"
)

// maxLocaleNameLength mirrors the full-name capacity of the runtime's locale buffers.
const maxLocaleNameLength = 157

var (
	emptyBase   language.Base
	emptyScript language.Script
	emptyRegion language.Region
)

// Normalizer converts caller supplied identifiers into the canonical tag every
// accessor works with.
type Normalizer interface {
	Normalize(locale string) (language.Tag, error)
}

// NormalizerFunc adapts a bare function to the Normalizer interface.
type NormalizerFunc func(locale string) (language.Tag, error)

// Normalize implements Normalizer.
func (fn NormalizerFunc) Normalize(locale string) (language.Tag, error) {
	return fn(locale)
}

// DefaultNormalizer accepts BCP 47 and POSIX style identifiers. The empty identifier
// names the invariant (root) locale.
type DefaultNormalizer struct{}

var _ Normalizer = DefaultNormalizer{}

// Normalize implements Normalizer.
func (DefaultNormalizer) Normalize(locale string) (language.Tag, error) {
	normalized := normalizeLocale(locale)
	if len(normalized) > maxLocaleNameLength {
		return language.Und, fmt.Errorf("%w: identifier longer than %d bytes", ErrInvalidLocale, maxLocaleNameLength)
	}
	for _, r := range normalized {
		if r > unicode.MaxASCII {
			return language.Und, fmt.Errorf("%w: non-ASCII identifier %q", ErrInvalidLocale, locale)
		}
	}
	if normalized == "" {
		return language.Und, nil
	}

	tag, err := language.Parse(normalized)
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q: %v", ErrInvalidLocale, locale, err)
	}
	return tag, nil
}

// normalizeLocale replaces underscores with hyphens and trims whitespace.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

// canonicalLocaleName normalizes locale and, when it parses, returns its canonical
// name so "es_mx" and "es-MX" share a key.
func canonicalLocaleName(locale string) string {
	normalized := normalizeLocale(locale)
	if normalized == "" || normalized == "root" {
		return normalized
	}
	if tag, err := language.Parse(normalized); err == nil {
		if name := LocaleName(tag); name != "" {
			return name
		}
	}
	return normalized
}

// FixupLocaleName turns a library produced identifier into the form callers expect:
// underscores become hyphens and keyword suffixes starting at '@' are dropped.
func FixupLocaleName(name string) string {
	if idx := strings.IndexByte(name, '@'); idx >= 0 {
		name = name[:idx]
	}
	return strings.ReplaceAll(name, "_", "-")
}

// LocaleName returns the canonical identifier of tag without extensions. The root
// locale is the empty string.
func LocaleName(tag language.Tag) string {
	stripped := stripExtensions(tag)
	if stripped.IsRoot() {
		return ""
	}
	if value := stripped.String(); value != "und" {
		return value
	}
	return ""
}

// ParentLocale returns the next broader locale in the
// language-script-region-variant hierarchy: the last variant is dropped first, then
// the region, then the script. The parent of a bare language is the root locale.
func ParentLocale(tag language.Tag) language.Tag {
	base, script, region := tag.Raw()
	variants := tag.Variants()

	switch {
	case len(variants) > 0:
		return composeTag(base, script, region, variants[:len(variants)-1])
	case region != emptyRegion:
		return composeTag(base, script, emptyRegion, nil)
	case script != emptyScript:
		return composeTag(base, emptyScript, emptyRegion, nil)
	default:
		return language.Und
	}
}

func stripExtensions(tag language.Tag) language.Tag {
	base, script, region := tag.Raw()
	return composeTag(base, script, region, tag.Variants())
}

func composeTag(base language.Base, script language.Script, region language.Region, variants []language.Variant) language.Tag {
	parts := []any{base}
	if script != emptyScript {
		parts = append(parts, script)
	}
	if region != emptyRegion {
		parts = append(parts, region)
	}
	if len(variants) > 0 {
		parts = append(parts, variants)
	}

	tag, err := language.Compose(parts...)
	if err != nil {
		return language.Und
	}
	return tag
}

// localeParentChain lists the data parents of tag, closest first, ending before the
// root locale. CLDR parent locales and script inference come first (zh-TW inherits
// from zh-Hant, es-US from es-419), then the truncation parents.
func localeParentChain(tag language.Tag) []string {
	var chain []string
	seen := make(map[string]struct{}, 4)
	add := func(parent language.Tag) bool {
		name := LocaleName(parent)
		if name == "" {
			return false
		}
		if _, exists := seen[name]; exists {
			return false
		}
		seen[name] = struct{}{}
		chain = append(chain, name)
		return true
	}

	stripped := stripExtensions(tag)
	if name := LocaleName(stripped); name != "" {
		seen[name] = struct{}{}
	}
	for parent := stripped.Parent(); !parent.IsRoot(); parent = parent.Parent() {
		if !add(parent) {
			break
		}
	}
	for parent := ParentLocale(stripped); !parent.IsRoot(); parent = ParentLocale(parent) {
		add(parent)
	}
	return chain
}

func isoLanguageTwoLetter(tag language.Tag) string {
	base, _, _ := tag.Raw()
	if base == emptyBase {
		return ""
	}
	return base.String()
}

func isoLanguageThreeLetter(tag language.Tag) (string, error) {
	base, _, _ := tag.Raw()
	if base == emptyBase {
		return "", fmt.Errorf("%w: no ISO 639-2 code for %q", ErrInvalidLocale, LocaleName(tag))
	}
	code := base.ISO3()
	if code == "" {
		return "", fmt.Errorf("%w: no ISO 639-2 code for %q", ErrInvalidLocale, LocaleName(tag))
	}
	return code, nil
}

func isoRegionTwoLetter(tag language.Tag) string {
	_, _, region := tag.Raw()
	if region == emptyRegion {
		return ""
	}
	return region.String()
}

func isoRegionThreeLetter(tag language.Tag) (string, error) {
	_, _, region := tag.Raw()
	if region == emptyRegion || !region.IsCountry() {
		return "", fmt.Errorf("%w: no ISO 3166 alpha-3 code for %q", ErrInvalidLocale, LocaleName(tag))
	}
	code := region.ISO3()
	if code == "" {
		return "", fmt.Errorf("%w: no ISO 3166 alpha-3 code for %q", ErrInvalidLocale, LocaleName(tag))
	}
	return code, nil
}
