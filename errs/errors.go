// Package errs defines the sentinel error values shared across bdelta packages.
//
// All errors are plain sentinel values so callers can test them with
// errors.Is after any amount of fmt.Errorf("%w") wrapping.
package errs

import "errors"

// Diff errors.
var (
	// ErrEmptyInput is returned when the reference or target buffer is empty.
	// The delta format has no encoding for empty buffers; callers are
	// expected to special-case them.
	ErrEmptyInput = errors.New("empty reference or target buffer")

	// ErrDeltaTooLarge is returned when the encoded delta would exceed the
	// caller-imposed output size ceiling.
	ErrDeltaTooLarge = errors.New("delta exceeds maximum output size")
)

// Apply and inspection errors.
var (
	// ErrCorruptDelta is returned when a delta stream is malformed: a
	// truncated header or opcode, a reserved zero insert count, or a copy
	// that reaches outside the reference buffer.
	ErrCorruptDelta = errors.New("corrupt delta stream")

	// ErrSizeMismatch is returned when the sizes recorded in the delta
	// header do not match the buffers being patched: the reference size
	// differs from the supplied reference, or the reconstructed target
	// differs from the declared target size.
	ErrSizeMismatch = errors.New("delta size mismatch")
)
