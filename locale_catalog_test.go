package localeinfo

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"
)

func newBundledCatalog(t *testing.T, resolver FallbackResolver) *LocaleCatalog {
	t.Helper()
	catalog, err := NewLocaleCatalog(localeDataBundles, nil, resolver)
	if err != nil {
		t.Fatalf("NewLocaleCatalog: %v", err)
	}
	return catalog
}

func TestLocaleCatalogChain(t *testing.T) {
	catalog := newBundledCatalog(t, nil)

	cases := []struct {
		locale string
		want   []string
	}{
		{"es-MX", []string{"es-MX", "es-419", "es", "root"}},
		{"es-US", []string{"es-419", "es", "root"}},
		{"zh-TW", []string{"zh-Hant", "zh", "root"}},
		{"zh-Hant-TW", []string{"zh-Hant", "zh", "root"}},
		{"de-AT", []string{"de", "root"}},
		{"sw-KE", []string{"root"}},
		{"", []string{"root"}},
	}
	for _, tc := range cases {
		tag, err := DefaultNormalizer{}.Normalize(tc.locale)
		if err != nil {
			t.Fatalf("Normalize(%q): %v", tc.locale, err)
		}
		if diff := cmp.Diff(tc.want, catalog.Chain(tag)); diff != "" {
			t.Errorf("Chain(%q) mismatch (-want +got):\n%s", tc.locale, diff)
		}
	}
}

func TestLocaleCatalogChainUsesFallbacks(t *testing.T) {
	resolver := NewStaticFallbackResolver()
	resolver.Set("ca_ES", "es-419")
	catalog := newBundledCatalog(t, resolver)

	got := catalog.Chain(language.MustParse("ca-ES"))
	want := []string{"es-419", "es", "root"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("chain mismatch (-want +got):\n%s", diff)
	}

	data := catalog.Resolve(language.MustParse("ca-ES"))
	if data.Symbols.Decimal != "." {
		t.Fatalf("expected es-419 decimal separator, got %q", data.Symbols.Decimal)
	}
	if data.DayPeriods.AM != "a.\u00a0m." {
		t.Fatalf("expected AM inherited from es, got %q", data.DayPeriods.AM)
	}
}

func TestLocaleCatalogResolveInherits(t *testing.T) {
	catalog := newBundledCatalog(t, nil)

	data := catalog.Resolve(language.MustParse("de-CH"))
	if data.Symbols.Decimal != "." || data.Symbols.Group != "’" {
		t.Fatalf("expected de-CH separators, got %+v", data.Symbols)
	}
	if data.Symbols.Percent != "%" {
		t.Fatalf("expected percent inherited from root, got %q", data.Symbols.Percent)
	}
	if data.CurrencyNames["CHF"] != "Schweizer Franken" {
		t.Fatalf("expected currency names inherited from de, got %v", data.CurrencyNames)
	}
	if data.NumberingSystem != "latn" {
		t.Fatalf("expected latn numbering system, got %q", data.NumberingSystem)
	}

	arMA := catalog.Resolve(language.MustParse("ar-MA"))
	if arMA.NumberingSystem != "latn" {
		t.Fatalf("expected ar-MA to override the arab numbering system, got %q", arMA.NumberingSystem)
	}
}

func TestLocaleCatalogOverlays(t *testing.T) {
	overlays := map[string]LocaleData{
		"de_DE": {Symbols: NumberSymbols{Decimal: "#"}},
		"de":    {TimeFormats: TimeFormats{Short: "HH.mm"}},
	}
	catalog, err := NewLocaleCatalog(localeDataBundles, overlays, nil)
	if err != nil {
		t.Fatalf("NewLocaleCatalog: %v", err)
	}

	if !catalog.Has("de-DE") {
		t.Fatalf("expected overlay locale to be registered")
	}
	data := catalog.Resolve(language.MustParse("de-DE"))
	if data.Symbols.Decimal != "#" || data.Symbols.Group != "." {
		t.Fatalf("unexpected overlay merge %+v", data.Symbols)
	}
	if data.TimeFormats.Short != "HH.mm" || data.TimeFormats.Medium != "HH:mm:ss" {
		t.Fatalf("unexpected time formats %+v", data.TimeFormats)
	}

	if bundled := localeDataBundles["de"].TimeFormats.Short; bundled != "HH:mm" {
		t.Fatalf("generated bundle mutated: %q", bundled)
	}
}

func TestLocaleCatalogValidation(t *testing.T) {
	if _, err := NewLocaleCatalog(map[string]LocaleData{"en": {}}, nil, nil); err == nil {
		t.Fatalf("expected error without root")
	}

	_, err := NewLocaleCatalog(localeDataBundles, map[string]LocaleData{"xx": {NumberingSystem: "klingon"}}, nil)
	if err == nil || !strings.Contains(err.Error(), "klingon") {
		t.Fatalf("expected unknown numbering system error, got %v", err)
	}
}

func TestLocaleCatalogAccessors(t *testing.T) {
	catalog := newBundledCatalog(t, nil)

	codes := catalog.Codes()
	if diff := cmp.Diff(GeneratedLocales(), codes); diff != "" {
		t.Fatalf("codes mismatch (-want +got):\n%s", diff)
	}
	codes[0] = "mutated"
	if catalog.Codes()[0] == "mutated" {
		t.Fatalf("Codes must return a copy")
	}

	data, ok := catalog.Data("fr")
	if !ok {
		t.Fatalf("expected fr data")
	}
	data.CurrencyNames["EUR"] = "mutated"
	if again, _ := catalog.Data("fr"); again.CurrencyNames["EUR"] != "euro" {
		t.Fatalf("Data must return a copy")
	}
	if _, ok := catalog.Data("xx"); ok {
		t.Fatalf("unexpected data for xx")
	}

	if got := catalog.DisplayName("de"); got != "German" {
		t.Fatalf("DisplayName(de) = %q", got)
	}
	if got := catalog.DisplayName("root"); got != "Root" {
		t.Fatalf("DisplayName(root) = %q", got)
	}

	var nilCatalog *LocaleCatalog
	if nilCatalog.Codes() != nil || nilCatalog.Has("en") || nilCatalog.Chain(language.English) != nil {
		t.Fatalf("nil catalog should be empty")
	}
}

func TestStaticFallbackResolver(t *testing.T) {
	resolver := NewStaticFallbackResolver()
	resolver.Set("pt_AO", "pt-PT", "pt_pt", "pt-AO", "")

	got := resolver.Resolve("pt-AO")
	if diff := cmp.Diff([]string{"pt-PT"}, got); diff != "" {
		t.Fatalf("resolve mismatch (-want +got):\n%s", diff)
	}

	got[0] = "mutated"
	if resolver.Resolve("pt-AO")[0] != "pt-PT" {
		t.Fatalf("Resolve must return a copy")
	}

	resolver.Set("pt-AO")
	if chain := resolver.Resolve("pt-AO"); chain != nil {
		t.Fatalf("expected chain removed, got %v", chain)
	}

	var nilResolver *StaticFallbackResolver
	nilResolver.Set("en", "de")
	if nilResolver.Resolve("en") != nil {
		t.Fatalf("nil resolver should resolve nothing")
	}
}
