// Package bdelta computes compact binary deltas between blob revisions for
// content-addressed object storage.
//
// Given an older reference buffer and a newer target buffer, Diff produces
// a small byte stream that Apply can combine with the reference to
// reconstruct the target exactly. An object store keeps one full revision
// and encodes the others as deltas, falling back to whole blobs when a
// delta stops paying for itself.
//
// # Core Features
//
//   - Greedy block matching over a rolling-checksum index (16-byte blocks)
//   - Compact wire format: varint header, literal runs, masked copy opcodes
//   - Hard output ceiling so callers can bound delta size up front
//   - Content IDs (64-bit xxHash64) for addressing blobs and deltas
//   - Optional compression of stored deltas (Zstd, S2, LZ4)
//
// # Basic Usage
//
//	import "github.com/arloliu/bdelta"
//
//	// Encode the new revision against the old one
//	d, err := bdelta.Diff(oldBlob, newBlob, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Later, reconstruct the new revision
//	restored, err := bdelta.Apply(oldBlob, d)
//
// Bounding the delta size:
//
//	// Give up when the delta would exceed half the target
//	d, err := bdelta.Diff(oldBlob, newBlob, uint64(len(newBlob)/2))
//	if errors.Is(err, errs.ErrDeltaTooLarge) {
//	    // store newBlob whole instead
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the delta
// package. For delta inspection (opcode scanning, header decoding) use the
// delta package directly; for storage compression see the compress package.
package bdelta

import (
	"github.com/arloliu/bdelta/compress"
	"github.com/arloliu/bdelta/delta"
	"github.com/arloliu/bdelta/format"
	"github.com/arloliu/bdelta/internal/hash"
)

// Diff computes a delta that reconstructs target from ref.
//
// maxSize caps the delta length in bytes; 0 means unlimited. When the cap
// would be exceeded, Diff returns errs.ErrDeltaTooLarge and no partial
// output, so the caller can store the target whole instead. Empty inputs
// return errs.ErrEmptyInput.
//
// Parameters:
//   - ref: The older revision the delta is expressed against
//   - target: The newer revision the delta reconstructs
//   - maxSize: Output size ceiling in bytes (0 = unlimited)
//
// Returns:
//   - []byte: The complete delta stream.
//   - error: An error if the inputs are empty or the ceiling is exceeded.
func Diff(ref, target []byte, maxSize uint64) ([]byte, error) {
	return delta.Diff(ref, target, maxSize)
}

// Apply reconstructs the target buffer from ref and a delta previously
// produced by Diff against the same reference.
//
// Parameters:
//   - ref: The reference buffer the delta was computed against
//   - d: The delta stream
//
// Returns:
//   - []byte: The reconstructed target.
//   - error: An error if the delta is corrupt or built for another reference.
func Apply(ref, d []byte) ([]byte, error) {
	return delta.Apply(ref, d)
}

// ObjectID computes the 64-bit content ID of a buffer.
//
// The ID is an xxHash64 digest, suitable as a content-addressed key for
// references, targets and deltas alike:
//
//	key := bdelta.ObjectID(blob)
//	store.Put(key, blob)
func ObjectID(data []byte) uint64 {
	return hash.ID(data)
}

// DiffCompressed computes a delta and compresses it for storage at rest.
//
// maxSize applies to the raw delta, before compression, so the ceiling
// semantics match Diff exactly.
//
// Parameters:
//   - ref: The older revision the delta is expressed against
//   - target: The newer revision the delta reconstructs
//   - maxSize: Raw delta size ceiling in bytes (0 = unlimited)
//   - compression: Storage codec (format.CompressionNone|Zstd|S2|LZ4)
//
// Returns:
//   - []byte: The compressed delta.
//   - error: An error from Diff or from the codec.
func DiffCompressed(ref, target []byte, maxSize uint64, compression format.CompressionType) ([]byte, error) {
	d, err := delta.Diff(ref, target, maxSize)
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	return codec.Compress(d)
}

// ApplyCompressed decompresses a stored delta and applies it to ref.
//
// The compression type must match the one given to DiffCompressed.
//
// Parameters:
//   - ref: The reference buffer the delta was computed against
//   - stored: The compressed delta
//   - compression: Storage codec the delta was stored with
//
// Returns:
//   - []byte: The reconstructed target.
//   - error: An error from the codec or from Apply.
func ApplyCompressed(ref, stored []byte, compression format.CompressionType) ([]byte, error) {
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	d, err := codec.Decompress(stored)
	if err != nil {
		return nil, err
	}

	return delta.Apply(ref, d)
}
