//go:build cgo

// Command libglobalization builds the locale string entry points as a C shared
// library:
//
//	go build -buildmode=c-shared -o libglobalization.so ./cmd/libglobalization
//
// Locale names and outputs are NUL terminated UTF-16. Both entry points return 1 on
// success and 0 on any failure.
package main

/*
#include <stdint.h>
*/
import "C"

import (
	"unicode/utf16"
	"unsafe"

	localeinfo "github.com/goliatone/go-localeinfo"
)

// maxLocaleNameUnits bounds the scan for the locale name terminator.
const maxLocaleNameUnits = 157

//export GlobalizationNative_GetLocaleInfoString
func GlobalizationNative_GetLocaleInfoString(localeName *C.uint16_t, field C.int32_t, value *C.uint16_t, valueLength C.int32_t) C.int32_t {
	name, ok := goLocaleName(localeName)
	if !ok {
		return 0
	}
	return boolResult(localeinfo.GetLocaleInfoString(name, localeinfo.LocaleStringField(field), outputUnits(value, valueLength)))
}

//export GlobalizationNative_GetLocaleTimeFormat
func GlobalizationNative_GetLocaleTimeFormat(localeName *C.uint16_t, shortFormat C.int32_t, value *C.uint16_t, valueLength C.int32_t) C.int32_t {
	name, ok := goLocaleName(localeName)
	if !ok {
		return 0
	}
	return boolResult(localeinfo.GetLocaleTimeFormat(name, shortFormat != 0, outputUnits(value, valueLength)))
}

// goLocaleName decodes a NUL terminated UTF-16 name. A nil pointer is the invariant
// locale.
func goLocaleName(ptr *C.uint16_t) (string, bool) {
	if ptr == nil {
		return "", true
	}
	base := unsafe.Pointer(ptr)
	for n := 0; n <= maxLocaleNameUnits; n++ {
		if *(*uint16)(unsafe.Add(base, n*2)) != 0 {
			continue
		}
		units := unsafe.Slice((*uint16)(base), n)
		return string(utf16.Decode(units)), true
	}
	return "", false
}

func outputUnits(ptr *C.uint16_t, length C.int32_t) []uint16 {
	if ptr == nil || length <= 0 {
		return nil
	}
	return unsafe.Slice((*uint16)(unsafe.Pointer(ptr)), int(length))
}

func boolResult(ok bool) C.int32_t {
	if ok {
		return 1
	}
	return 0
}

func main() {}
