package localeinfo

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"
)

func TestDefaultNormalizer(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"en_US", "en-US"},
		{" de-DE ", "de-DE"},
		{"sr_Latn_RS", "sr-Latn-RS"},
		{"", ""},
		{"en-US-u-nu-arab", "en-US"},
	}
	for _, tc := range cases {
		tag, err := DefaultNormalizer{}.Normalize(tc.input)
		if err != nil {
			t.Fatalf("Normalize(%q): %v", tc.input, err)
		}
		if got := LocaleName(tag); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestDefaultNormalizerRejectsInvalidInput(t *testing.T) {
	inputs := []string{
		"!!",
		"de-ÄÖ",
		"en-" + strings.Repeat("x", maxLocaleNameLength),
	}
	for _, input := range inputs {
		if _, err := (DefaultNormalizer{}).Normalize(input); !errors.Is(err, ErrInvalidLocale) {
			t.Errorf("Normalize(%q) expected ErrInvalidLocale, got %v", input, err)
		}
	}
}

func TestParentLocale(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"sr-Latn-RS", "sr-Latn"},
		{"sr-Latn", "sr"},
		{"en-US", "en"},
		{"de-DE-1996", "de-DE"},
		{"en-US-u-nu-arab", "en"},
		{"en", ""},
		{"", ""},
	}
	for _, tc := range cases {
		tag, err := DefaultNormalizer{}.Normalize(tc.input)
		if err != nil {
			t.Fatalf("Normalize(%q): %v", tc.input, err)
		}
		if got := LocaleName(ParentLocale(tag)); got != tc.want {
			t.Errorf("ParentLocale(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestLocaleParentChain(t *testing.T) {
	cases := []struct {
		locale string
		want   []string
	}{
		{"zh-Hant-TW", []string{"zh-Hant", "zh"}},
		{"zh-TW", []string{"zh-Hant", "zh"}},
		{"es-US", []string{"es-419", "es"}},
		{"es-MX", []string{"es-419", "es"}},
		{"en-US", []string{"en"}},
		{"de-CH-u-nu-latn", []string{"de"}},
	}
	for _, tc := range cases {
		got := localeParentChain(language.MustParse(tc.locale))
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("localeParentChain(%q) mismatch (-want +got):\n%s", tc.locale, diff)
		}
	}
	if chain := localeParentChain(language.Und); len(chain) != 0 {
		t.Fatalf("root has no parents, got %v", chain)
	}
}

func TestFixupLocaleName(t *testing.T) {
	cases := map[string]string{
		"zh_Hans@collation=pinyin": "zh-Hans",
		"en_US":                    "en-US",
		"de":                       "de",
		"":                         "",
	}
	for input, want := range cases {
		if got := FixupLocaleName(input); got != want {
			t.Errorf("FixupLocaleName(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestCanonicalLocaleName(t *testing.T) {
	cases := map[string]string{
		"es_mx":   "es-MX",
		"root":    "root",
		"":        "",
		"zh-hant": "zh-Hant",
	}
	for input, want := range cases {
		if got := canonicalLocaleName(input); got != want {
			t.Errorf("canonicalLocaleName(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestISOCodes(t *testing.T) {
	enUS := language.MustParse("en-US")
	if got := isoLanguageTwoLetter(enUS); got != "en" {
		t.Fatalf("two-letter language = %q", got)
	}
	if got, err := isoLanguageThreeLetter(enUS); err != nil || got != "eng" {
		t.Fatalf("three-letter language = %q, %v", got, err)
	}
	if got := isoRegionTwoLetter(enUS); got != "US" {
		t.Fatalf("two-letter region = %q", got)
	}
	if got, err := isoRegionThreeLetter(enUS); err != nil || got != "USA" {
		t.Fatalf("three-letter region = %q, %v", got, err)
	}

	if got := isoRegionTwoLetter(language.English); got != "" {
		t.Fatalf("expected no region for en, got %q", got)
	}
	if _, err := isoRegionThreeLetter(language.English); !errors.Is(err, ErrInvalidLocale) {
		t.Fatalf("expected failure without region, got %v", err)
	}
	if _, err := isoRegionThreeLetter(language.MustParse("es-419")); !errors.Is(err, ErrInvalidLocale) {
		t.Fatalf("expected failure for a non-country region, got %v", err)
	}
	if got := isoLanguageTwoLetter(language.Und); got != "" {
		t.Fatalf("expected empty language for root, got %q", got)
	}
	if _, err := isoLanguageThreeLetter(language.Und); !errors.Is(err, ErrInvalidLocale) {
		t.Fatalf("expected failure for root, got %v", err)
	}
}
