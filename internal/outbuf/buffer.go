// Package outbuf provides the elastic output buffer used by the delta
// encoder. The buffer grows geometrically and enforces a caller-imposed
// hard ceiling on the number of bytes written.
package outbuf

import "github.com/arloliu/bdelta/errs"

// Buffer is an append-only byte buffer with positional back-patching and
// an optional size ceiling.
//
// The encoder emits at most headroom bytes between Reserve calls, so the
// buffer guarantees that much writable space after every successful
// Reserve. When a ceiling is set, capacity is clamped to ceiling plus
// headroom plus one; a Reserve that finds more than ceiling bytes already
// written fails with errs.ErrDeltaTooLarge.
type Buffer struct {
	b        []byte
	limit    int // current logical capacity
	headroom int
	max      int // ceiling in bytes, 0 means unlimited
}

// New creates a Buffer with the given initial capacity, per-emission
// headroom and ceiling. A maxSize of 0 means unlimited. When a ceiling is
// set and the initial capacity would reach it, the capacity is clamped to
// maxSize + headroom + 1 so the final Reserve can still detect overflow.
func New(initial, headroom int, maxSize uint64) *Buffer {
	limit := initial
	max := 0
	if maxSize > 0 {
		max = int(maxSize)
		if limit >= max {
			limit = max + headroom + 1
		}
	}

	return &Buffer{
		b:        make([]byte, 0, limit),
		limit:    limit,
		headroom: headroom,
		max:      max,
	}
}

// Len returns the number of bytes written.
func (b *Buffer) Len() int {
	return len(b.b)
}

// Bytes returns the written bytes. The slice is owned by the caller once
// the encoder returns; the Buffer must not be written afterwards.
func (b *Buffer) Bytes() []byte {
	return b.b
}

// WriteByte appends one byte. Reserve must have guaranteed space for it.
func (b *Buffer) WriteByte(c byte) {
	b.b = append(b.b, c)
}

// Set back-patches a previously written position.
func (b *Buffer) Set(i int, c byte) {
	b.b[i] = c
}

// At returns the byte at a previously written position.
func (b *Buffer) At(i int) byte {
	return b.b[i]
}

// Reserve ensures at least headroom writable bytes remain, growing the
// buffer by half its current capacity when needed. Growth is clamped to
// the ceiling plus headroom plus one; if the written length has already
// exceeded the ceiling, Reserve fails with errs.ErrDeltaTooLarge.
func (b *Buffer) Reserve() error {
	if len(b.b) < b.limit-b.headroom {
		return nil
	}

	newLimit := b.limit * 3 / 2
	if b.max > 0 {
		if newLimit >= b.max {
			newLimit = b.max + b.headroom + 1
		}
		if len(b.b) > b.max {
			return errs.ErrDeltaTooLarge
		}
	}

	if newLimit > cap(b.b) {
		grown := make([]byte, len(b.b), newLimit)
		copy(grown, b.b)
		b.b = grown
	}
	b.limit = newLimit

	return nil
}
