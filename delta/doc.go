// Package delta computes and applies compact binary deltas between two
// in-memory buffers.
//
// A delta expresses a target buffer in terms of an older reference
// buffer: byte ranges the two share become copy opcodes naming a range of
// the reference, and everything else becomes insert opcodes carrying the
// literal bytes. Applying the delta to the original reference reproduces
// the target exactly, so an object store can keep one full blob and
// encode each revision as a small delta against it.
//
// # Delta format
//
// A delta is a self-contained byte stream:
//
//	<varint reference size> <varint target size> <opcode>*
//
// Sizes are little-endian base-128 varints. Each opcode starts with one
// byte: a clear high bit is an insert whose low 7 bits count the literal
// bytes that follow (1..127); a set high bit is a copy whose low bits
// flag which bytes of the little-endian reference offset (bits 0..3) and
// copy size (bits 4..5) follow. Omitted bytes are zero, and a copy whose
// size bytes are all omitted copies 65536 bytes. There is no framing,
// checksum or trailer.
//
// # Matching
//
// Diff slices the reference into 16-byte blocks, fingerprints each with
// an Adler-style checksum and indexes them in a hash table. The target is
// then scanned greedily: at each position the matching blocks are
// extended byte by byte and the longest extension is emitted as a copy
// when it is cheaper than inserting the same bytes. The algorithm is
// greedy, not optimal, and both buffers must be fully in memory.
//
// # Usage
//
//	d, err := delta.Diff(oldBlob, newBlob, 0)
//	if err != nil {
//	    return err
//	}
//	restored, err := delta.Apply(oldBlob, d)
//
// Deltas larger than a caller-supplied ceiling abort with
// errs.ErrDeltaTooLarge, which an object store uses to fall back to
// storing the revision whole once a delta stops paying for itself.
package delta
