package localeinfo

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	if cfg.Logger == nil {
		t.Fatal("expected default logger")
	}
	if _, ok := cfg.Normalizer.(DefaultNormalizer); !ok {
		t.Fatalf("expected DefaultNormalizer, got %T", cfg.Normalizer)
	}
	if _, ok := cfg.Detector.(EnvLocaleDetector); !ok {
		t.Fatalf("expected EnvLocaleDetector, got %T", cfg.Detector)
	}
	if _, ok := cfg.Backend.(*CLDRBackend); !ok {
		t.Fatalf("expected CLDR backend, got %T", cfg.Backend)
	}
	if cfg.Resolver == nil {
		t.Fatal("expected fallback resolver")
	}
	if cfg.Catalog() == nil || !cfg.Catalog().Has("root") {
		t.Fatal("expected catalog with root locale")
	}
	if cfg.AtomicDigits {
		t.Fatal("atomic digits must be opt-in")
	}
}

func TestNewConfigDefaultLocale(t *testing.T) {
	cfg, err := NewConfig(WithDefaultLocale("pt_BR"))
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	detector, ok := cfg.Detector.(StaticLocaleDetector)
	if !ok {
		t.Fatalf("expected StaticLocaleDetector, got %T", cfg.Detector)
	}
	if detector.Tag != language.MustParse("pt-BR") {
		t.Fatalf("default locale = %s", detector.Tag)
	}

	if _, err := NewConfig(WithDefaultLocale("!!")); !errors.Is(err, ErrInvalidLocale) {
		t.Fatalf("expected ErrInvalidLocale, got %v", err)
	}
}

func TestNewConfigCustomBackendHasNoCatalog(t *testing.T) {
	backend := newCountingBackend(t)
	cfg, err := NewConfig(
		WithBackend(backend),
		WithLocaleData("ignored.yaml"),
	)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.Backend != backend {
		t.Fatalf("expected the supplied backend")
	}
	if cfg.Catalog() != nil {
		t.Fatalf("expected no catalog with a custom backend")
	}

	service, err := NewServiceFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewServiceFromConfig: %v", err)
	}
	if service.Catalog() != nil {
		t.Fatalf("expected no service catalog")
	}
}

func TestNewServiceFromConfigValidates(t *testing.T) {
	if _, err := NewServiceFromConfig(nil); err == nil {
		t.Fatal("expected error for nil config")
	}
	if _, err := NewServiceFromConfig(&Config{}); err == nil {
		t.Fatal("expected error for config without backend")
	}
}

func TestWithLocaleDataOverrideValidation(t *testing.T) {
	if _, err := NewConfig(WithLocaleDataOverride(" ", "x.yaml")); err == nil {
		t.Fatal("expected error for empty override locale")
	}
	if _, err := NewConfig(WithLocaleDataOverride("de", "")); err == nil {
		t.Fatal("expected error for empty override path")
	}
}

func TestNewConfigMissingDataFileFails(t *testing.T) {
	if _, err := NewConfig(WithLocaleData("does-not-exist.yaml")); err == nil {
		t.Fatal("expected error for missing data file")
	}
}

func TestLocaleDataChangesResults(t *testing.T) {
	dir := t.TempDir()
	path := writeDataFile(t, dir, "custom.yaml", `
de-AT:
  symbols:
    group: " "
  time_formats:
    short: "HH.mm"
`)
	override := writeDataFile(t, dir, "de.json", `{"day_periods": {"am": "vorm.", "pm": "nachm."}}`)

	service := newTestService(t,
		WithLocaleData(" ", path),
		WithLocaleDataOverride("de", override),
	)

	cases := map[LocaleStringField]string{
		ThousandSeparator: " ",
		DecimalSeparator:  ",",
		AMDesignator:      "vorm.",
		PMDesignator:      "nachm.",
	}
	for field, want := range cases {
		got, err := service.LocaleInfo("de-AT", field)
		if err != nil {
			t.Fatalf("%s: %v", field, err)
		}
		if got != want {
			t.Fatalf("%s = %q, want %q", field, got, want)
		}
	}

	pattern, err := service.TimeFormat("de-AT", true)
	if err != nil {
		t.Fatalf("TimeFormat: %v", err)
	}
	if pattern != "HH.mm" {
		t.Fatalf("TimeFormat = %q", pattern)
	}
	if !service.Catalog().Has("de-AT") {
		t.Fatal("expected de-AT in catalog")
	}
}

func TestWithFallbackAddsChain(t *testing.T) {
	service := newTestService(t, WithFallback("ca", "es-419"))

	got, err := service.LocaleInfo("ca-ES", DecimalSeparator)
	if err != nil {
		t.Fatalf("LocaleInfo: %v", err)
	}
	if got != "." {
		t.Fatalf("DecimalSeparator = %q", got)
	}

	chain := service.Catalog().Chain(language.MustParse("ca-ES"))
	if diff := cmp.Diff([]string{"es-419", "es", "root"}, chain); diff != "" {
		t.Fatalf("chain mismatch (-want +got):\n%s", diff)
	}
}

type mapResolver map[string][]string

func (m mapResolver) Resolve(locale string) []string {
	return m[locale]
}

func TestWithFallbackRejectsCustomResolver(t *testing.T) {
	_, err := NewConfig(
		WithFallbackResolver(mapResolver{"pt-AO": {"pt-PT"}}),
		WithFallback("ca", "es"),
	)
	if err == nil || !strings.Contains(err.Error(), "StaticFallbackResolver") {
		t.Fatalf("expected resolver type error, got %v", err)
	}

	cfg, err := NewConfig(
		WithDefaultLocale("en"),
		WithFallbackResolver(mapResolver{"ca": {"es"}}),
	)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	chain := cfg.Catalog().Chain(language.MustParse("ca"))
	if diff := cmp.Diff([]string{"es", "root"}, chain); diff != "" {
		t.Fatalf("chain mismatch (-want +got):\n%s", diff)
	}
}

func TestEnvConfig(t *testing.T) {
	t.Setenv("LOCALEINFO_DEFAULT_LOCALE", "fr")
	t.Setenv("LOCALEINFO_DATA_PATHS", "a.yaml,b.json")
	t.Setenv("LOCALEINFO_ATOMIC_DIGITS", "true")
	t.Setenv("LOCALEINFO_LOG_LEVEL", "")

	cfg, err := LoadEnvConfig()
	if err != nil {
		t.Fatalf("LoadEnvConfig: %v", err)
	}
	want := EnvConfig{
		DefaultLocale: "fr",
		DataPaths:     []string{"a.yaml", "b.json"},
		AtomicDigits:  true,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("env config mismatch (-want +got):\n%s", diff)
	}

	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	if len(opts) != 3 {
		t.Fatalf("expected 3 options, got %d", len(opts))
	}
}

func TestEnvConfigRejectsBadValues(t *testing.T) {
	t.Setenv("LOCALEINFO_ATOMIC_DIGITS", "maybe")
	if _, err := LoadEnvConfig(); err == nil {
		t.Fatal("expected error for invalid bool")
	}

	if _, err := (EnvConfig{LogLevel: "loud"}).Options(); err == nil {
		t.Fatal("expected error for invalid log level")
	}

	opts, err := (EnvConfig{LogLevel: "debug"}).Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	cfg, err := NewConfig(append(opts, WithDefaultLocale("en"))...)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if !cfg.Logger.Core().Enabled(-1) {
		t.Fatal("expected debug logging enabled")
	}
}
