package localeinfo

import (
	"errors"
	"fmt"
	"testing"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		err  error
		want Status
	}{
		{nil, StatusOK},
		{fmt.Errorf("wrap: %w", ErrInvalidLocale), StatusInvalidLocale},
		{ErrUnsupportedField, StatusUnsupportedField},
		{&CapacityError{Needed: 3, Capacity: 1}, StatusBufferTooSmall},
		{fmt.Errorf("digit 3: %w", &CapacityError{Needed: 5, Capacity: 4}), StatusBufferTooSmall},
		{ErrLibrary, StatusLibraryFailure},
		{ErrHandleClosed, StatusLibraryFailure},
		{errors.New("boom"), StatusLibraryFailure},
	}
	for _, tc := range cases {
		if got := StatusOf(tc.err); got != tc.want {
			t.Errorf("StatusOf(%v) = %s, want %s", tc.err, got, tc.want)
		}
		if got := Succeeded(tc.err); got != (tc.want == StatusOK) {
			t.Errorf("Succeeded(%v) = %v", tc.err, got)
		}
	}
}

func TestStatusString(t *testing.T) {
	if StatusBufferTooSmall.String() != "buffer-too-small" {
		t.Fatalf("unexpected name %q", StatusBufferTooSmall)
	}
	if Status(42).String() != "status(42)" {
		t.Fatalf("unexpected fallback name %q", Status(42))
	}
}
