package localeinfo

import (
	"unicode/utf16"
)

// Buffer is a bounded UTF-16 output written in place. Every successful write ends with
// a NUL terminator, so a value of n code units needs a capacity of at least n+1.
type Buffer struct {
	data []uint16
}

// NewBuffer allocates a buffer with the given capacity in UTF-16 code units.
func NewBuffer(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{data: make([]uint16, capacity)}
}

// WrapBuffer uses a caller-owned slice as output storage. Its length is the capacity.
func WrapBuffer(data []uint16) *Buffer {
	return &Buffer{data: data}
}

// Cap returns the capacity in UTF-16 code units.
func (b *Buffer) Cap() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// Units exposes the underlying storage.
func (b *Buffer) Units() []uint16 {
	if b == nil {
		return nil
	}
	return b.data
}

// String decodes the buffer up to the first terminator.
func (b *Buffer) String() string {
	if b == nil {
		return ""
	}
	end := len(b.data)
	for i, unit := range b.data {
		if unit == 0 {
			end = i
			break
		}
	}
	return string(utf16.Decode(b.data[:end]))
}

// Write stores value at the start of the buffer.
func (b *Buffer) Write(value string) error {
	return b.WriteAt(0, value)
}

// WriteAt stores value starting at slot offset followed by a terminator. Nothing is
// written when the value does not fit.
func (b *Buffer) WriteAt(offset int, value string) error {
	units := utf16.Encode([]rune(value))
	needed := offset + len(units) + 1
	if offset < 0 || needed > b.Cap() {
		return &CapacityError{Needed: needed, Capacity: b.Cap()}
	}

	copy(b.data[offset:], units)
	b.data[offset+len(units)] = 0
	return nil
}

// commit copies the terminated contents of src into b.
func (b *Buffer) commit(src *Buffer) error {
	return b.Write(src.String())
}
