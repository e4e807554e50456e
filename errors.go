package localeinfo

import (
	"errors"
	"fmt"
)

// ErrInvalidLocale indicates a locale identifier that could not be normalized, or a
// lookup whose answer is undefined for the locale.
var ErrInvalidLocale = errors.New("localeinfo: invalid locale")

// ErrUnsupportedField marks a field selector or style the accessor does not know.
var ErrUnsupportedField = errors.New("localeinfo: unsupported field")

// ErrBufferTooSmall is reported when a value plus its terminator does not fit.
var ErrBufferTooSmall = errors.New("localeinfo: buffer too small")

// ErrHandleClosed is returned by formatter handles used after Close.
var ErrHandleClosed = errors.New("localeinfo: handle closed")

// ErrLibrary wraps failures reported by the wrapped locale data library.
var ErrLibrary = errors.New("localeinfo: library failure")

// CapacityError carries the capacity a write would have needed.
type CapacityError struct {
	Needed   int
	Capacity int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("localeinfo: buffer too small: need %d, have %d", e.Needed, e.Capacity)
}

// Is lets errors.Is(err, ErrBufferTooSmall) match.
func (e *CapacityError) Is(target error) bool {
	return target == ErrBufferTooSmall
}

// Status is the coarse classification of an accessor error.
type Status int

const (
	StatusOK Status = iota
	StatusInvalidLocale
	StatusUnsupportedField
	StatusBufferTooSmall
	StatusLibraryFailure
)

var statusNames = map[Status]string{
	StatusOK:               "ok",
	StatusInvalidLocale:    "invalid-locale",
	StatusUnsupportedField: "unsupported-field",
	StatusBufferTooSmall:   "buffer-too-small",
	StatusLibraryFailure:   "library-failure",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// StatusOf classifies err. Unknown errors count as library failures.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrInvalidLocale):
		return StatusInvalidLocale
	case errors.Is(err, ErrUnsupportedField):
		return StatusUnsupportedField
	case errors.Is(err, ErrBufferTooSmall):
		return StatusBufferTooSmall
	default:
		return StatusLibraryFailure
	}
}

// Succeeded collapses an accessor error into the boundary's boolean result.
func Succeeded(err error) bool {
	return StatusOf(err) == StatusOK
}
