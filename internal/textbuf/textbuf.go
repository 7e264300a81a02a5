// Package textbuf provides an append-only byte buffer with an optional
// capacity-locked mode.
//
// A fixed buffer never reallocates: an append that does not fit in the
// remaining capacity is rejected as a whole and the buffer is left unchanged.
// Tensors use fixed buffers for their bounded display strings and growable
// buffers for labels.
package textbuf

import "errors"

// ErrCapacityExceeded is returned when an append would grow a fixed buffer.
var ErrCapacityExceeded = errors.New("textbuf: capacity exceeded")

// Buffer is an append-only text buffer.
type Buffer struct {
	buf   []byte
	fixed bool
}

// New creates a growable buffer with the given initial capacity.
func New(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{buf: make([]byte, 0, capacity)}
}

// NewFixed creates a buffer that rejects growth past capacity.
func NewFixed(capacity int) *Buffer {
	b := New(capacity)
	b.fixed = true
	return b
}

// FromString creates a growable buffer holding a copy of s.
func FromString(s string) *Buffer {
	b := New(len(s))
	b.buf = append(b.buf, s...)
	return b
}

// Len returns the number of bytes written.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.buf)
}

// Cap returns the current capacity.
func (b *Buffer) Cap() int {
	if b == nil {
		return 0
	}
	return cap(b.buf)
}

// Available returns how many bytes can be appended without growing.
func (b *Buffer) Available() int {
	if b == nil {
		return 0
	}
	return cap(b.buf) - len(b.buf)
}

// Fixed reports whether the buffer is capacity-locked.
func (b *Buffer) Fixed() bool {
	return b != nil && b.fixed
}

// SetFixed locks or unlocks the buffer capacity.
func (b *Buffer) SetFixed(fixed bool) {
	if b != nil {
		b.fixed = fixed
	}
}

func (b *Buffer) reserve(n int) error {
	if b.fixed && n > b.Available() {
		return ErrCapacityExceeded
	}
	return nil
}

// WriteByte appends a single byte.
func (b *Buffer) WriteByte(c byte) error {
	if err := b.reserve(1); err != nil {
		return err
	}
	b.buf = append(b.buf, c)
	return nil
}

// Write appends p. In fixed mode p is written entirely or not at all.
func (b *Buffer) Write(p []byte) (int, error) {
	if err := b.reserve(len(p)); err != nil {
		return 0, err
	}
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// WriteString appends s. In fixed mode s is written entirely or not at all.
func (b *Buffer) WriteString(s string) (int, error) {
	if err := b.reserve(len(s)); err != nil {
		return 0, err
	}
	b.buf = append(b.buf, s...)
	return len(s), nil
}

// Reset empties the buffer but keeps its capacity.
func (b *Buffer) Reset() {
	if b != nil {
		b.buf = b.buf[:0]
	}
}

// String returns the buffer contents.
func (b *Buffer) String() string {
	if b == nil {
		return ""
	}
	return string(b.buf)
}

// Bytes returns the buffer contents. The slice aliases the buffer and is
// only valid until the next modification.
func (b *Buffer) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.buf
}

// Clone returns a deep copy with the same capacity and mode.
func (b *Buffer) Clone() *Buffer {
	if b == nil {
		return nil
	}
	c := &Buffer{buf: make([]byte, len(b.buf), cap(b.buf)), fixed: b.fixed}
	copy(c.buf, b.buf)
	return c
}

// Release drops the underlying storage. The buffer may be reused afterwards
// and behaves as an empty buffer of zero capacity.
func (b *Buffer) Release() {
	if b != nil {
		b.buf = nil
	}
}
