package delta

import (
	"github.com/arloliu/bdelta/errs"
	"github.com/arloliu/bdelta/format"
	"github.com/arloliu/bdelta/internal/checksum"
	"github.com/arloliu/bdelta/internal/outbuf"
)

// initialOutputSize is the starting capacity of the delta output buffer.
const initialOutputSize = 8192

// copyOpSize returns the encoded size of a copy opcode for the given
// offset and size: the opcode byte plus one byte for every nonzero byte
// of the little-endian offset and size. A size of exactly MaxCopySize has
// no nonzero size bytes and costs only the opcode byte plus the offset.
func copyOpSize(off, size uint32) int {
	n := 1
	if off&0xff != 0 {
		n++
	}
	if off&0xff00 != 0 {
		n++
	}
	if off&0xff0000 != 0 {
		n++
	}
	if off&0xff000000 != 0 {
		n++
	}
	if size&0xff != 0 {
		n++
	}
	if size&0xff00 != 0 {
		n++
	}

	return n
}

// emitCopy appends a copy opcode: a mask byte with bit 7 set, followed by
// the nonzero bytes of the little-endian offset (mask bits 0..3) and size
// (mask bits 4..5). Omitted bytes decode as zero; a size with all bits
// omitted decodes as MaxCopySize.
func emitCopy(out *outbuf.Buffer, off, size uint32) {
	maskPos := out.Len()
	out.WriteByte(0)
	mask := byte(0x80)

	if off&0xff != 0 {
		out.WriteByte(byte(off))
		mask |= 0x01
	}
	off >>= 8
	if off&0xff != 0 {
		out.WriteByte(byte(off))
		mask |= 0x02
	}
	off >>= 8
	if off&0xff != 0 {
		out.WriteByte(byte(off))
		mask |= 0x04
	}
	off >>= 8
	if off&0xff != 0 {
		out.WriteByte(byte(off))
		mask |= 0x08
	}

	if size&0xff != 0 {
		out.WriteByte(byte(size))
		mask |= 0x10
	}
	size >>= 8
	if size&0xff != 0 {
		out.WriteByte(byte(size))
		mask |= 0x20
	}

	out.Set(maskPos, mask)
}

// closeInsertRun back-patches the pending insert run's length byte, which
// sits just before the run's literals.
func closeInsertRun(out *outbuf.Buffer, inscnt int) {
	out.Set(out.Len()-inscnt-1, byte(inscnt))
}

// Diff computes a delta that reconstructs target from ref.
//
// The delta starts with two varints recording len(ref) and len(target),
// followed by insert and copy opcodes. maxSize caps the delta length in
// bytes; 0 means unlimited. When the ceiling would be exceeded, Diff
// returns errs.ErrDeltaTooLarge and no partial output. Empty inputs
// return errs.ErrEmptyInput: the format cannot express them and callers
// are expected to store such blobs whole.
//
// Matching is greedy. Each target position is fingerprinted, the block
// index is probed, and every candidate with the same fingerprint is
// extended byte by byte against the target. The longest match wins; ties
// on length keep the earliest candidate in chain order.
// A match is emitted as a copy only when it is no shorter than the copy
// opcode that would encode it, and a single copy never exceeds
// format.MaxCopySize bytes. Everything else becomes literal runs of at
// most format.MaxInsertRun bytes.
func Diff(ref, target []byte, maxSize uint64) ([]byte, error) {
	if len(ref) == 0 || len(target) == 0 {
		return nil, errs.ErrEmptyInput
	}

	idx := newBlockIndex(ref)
	defer idx.release()

	out := outbuf.New(initialOutputSize, format.MaxOpSize, maxSize)
	writeVarint(out, uint64(len(ref)))
	writeVarint(out, uint64(len(target)))
	if err := out.Reserve(); err != nil {
		return nil, err
	}

	data := 0
	inscnt := 0
	for data < len(target) {
		msize := 0
		var moff uint32

		end := data + format.BlockSize
		if end > len(target) {
			end = len(target)
		}
		fp := checksum.Sum(target[data:end])

		for r := idx.probe(fp); r != nil; r = r.next {
			if r.fp != fp {
				continue
			}

			csize := len(ref) - int(r.off)
			if rest := len(target) - data; csize > rest {
				csize = rest
			}
			if csize > format.MaxCopySize {
				csize = format.MaxCopySize
			}

			n := 0
			for n < csize && ref[int(r.off)+n] == target[data+n] {
				n++
			}

			if n > msize {
				moff = r.off
				msize = n
				if msize >= format.MaxCopySize {
					msize = format.MaxCopySize
					break
				}
			}
		}

		if msize == 0 || msize < copyOpSize(moff, uint32(msize)) {
			if inscnt == 0 {
				out.WriteByte(0) // length byte, patched when the run closes
			}
			out.WriteByte(target[data])
			data++
			inscnt++
			if inscnt == format.MaxInsertRun {
				closeInsertRun(out, inscnt)
				inscnt = 0
			}
		} else {
			if inscnt > 0 {
				closeInsertRun(out, inscnt)
				inscnt = 0
			}
			data += msize
			emitCopy(out, moff, uint32(msize))
		}

		if err := out.Reserve(); err != nil {
			return nil, err
		}
	}

	if inscnt > 0 {
		closeInsertRun(out, inscnt)
	}

	return out.Bytes(), nil
}
