package localeinfo

import (
	"errors"
	"testing"
)

func TestLocaleTimeFormat(t *testing.T) {
	service := newTestService(t)

	cases := []struct {
		locale string
		short  bool
		want   string
	}{
		{"en-US", true, "h:mm a"},
		{"en-US", false, "h:mm:ss a"},
		{"en-GB", true, "HH:mm"},
		{"de-DE", false, "HH:mm:ss"},
		{"fr-CA", true, "HH 'h' mm"},
		{"fr-FR", true, "HH:mm"},
		{"ja-JP", true, "H:mm"},
		{"zh-Hant-TW", false, "ah:mm:ss"},
		{"zh-TW", true, "ah:mm"},
		{"zh-CN", true, "HH:mm"},
		{"sw-KE", true, "HH:mm"},
		{"", false, "HH:mm:ss"},
	}
	for _, tc := range cases {
		buf := NewBuffer(32)
		if err := service.LocaleTimeFormat(tc.locale, tc.short, buf); err != nil {
			t.Errorf("%q short=%v: %v", tc.locale, tc.short, err)
			continue
		}
		if got := buf.String(); got != tc.want {
			t.Errorf("%q short=%v = %q, want %q", tc.locale, tc.short, got, tc.want)
		}
	}
}

func TestLocaleTimeFormatErrors(t *testing.T) {
	service := newTestService(t)

	if err := service.LocaleTimeFormat("!!", true, NewBuffer(32)); !errors.Is(err, ErrInvalidLocale) {
		t.Fatalf("expected ErrInvalidLocale, got %v", err)
	}

	units := []uint16{'x', 'x', 'x'}
	err := service.LocaleTimeFormat("en-US", false, WrapBuffer(units))
	var capErr *CapacityError
	if !errors.As(err, &capErr) || capErr.Needed != len("h:mm:ss a")+1 {
		t.Fatalf("expected capacity error needing 10, got %v", err)
	}
	for i, unit := range units {
		if unit != 'x' {
			t.Fatalf("slot %d modified on failure", i)
		}
	}
}

func TestLocaleTimeFormatClosesHandleOnFailure(t *testing.T) {
	backend := newCountingBackend(t)
	backend.failPattern = ErrLibrary
	service := newTestService(t, WithBackend(backend))

	if err := service.LocaleTimeFormat("en-US", true, NewBuffer(32)); !errors.Is(err, ErrLibrary) {
		t.Fatalf("expected ErrLibrary, got %v", err)
	}
	backend.balanced(t)

	backend.failPattern = nil
	backend.failOpen = ErrLibrary
	if err := service.LocaleTimeFormat("en-US", true, NewBuffer(32)); !errors.Is(err, ErrLibrary) {
		t.Fatalf("expected ErrLibrary from open, got %v", err)
	}
	backend.balanced(t)
}
