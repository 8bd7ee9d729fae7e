package delta

import (
	"fmt"

	"github.com/arloliu/bdelta/errs"
)

// Apply executes a delta stream against the reference it was computed
// from and returns the reconstructed target.
//
// The header's reference size must match len(ref). Every copy is bounds
// checked against the reference, the reserved zero insert count is
// rejected, and the reconstructed length must equal the header's target
// size. Malformed streams return errs.ErrCorruptDelta; streams built for
// a different reference return errs.ErrSizeMismatch.
func Apply(ref, delta []byte) ([]byte, error) {
	refSize, pos, err := readVarint(delta, 0)
	if err != nil {
		return nil, fmt.Errorf("reading reference size: %w", err)
	}
	targetSize, pos, err := readVarint(delta, pos)
	if err != nil {
		return nil, fmt.Errorf("reading target size: %w", err)
	}

	if refSize != uint64(len(ref)) {
		return nil, fmt.Errorf("%w: delta built for reference of %d bytes, got %d",
			errs.ErrSizeMismatch, refSize, len(ref))
	}

	// cap the preallocation so a corrupt header cannot demand the declared
	// size up front; append grows the rest as opcodes execute
	capHint := targetSize
	if capHint > 1<<20 {
		capHint = 1 << 20
	}

	out := make([]byte, 0, capHint)
	for pos < len(delta) {
		cmd := delta[pos]
		pos++

		switch {
		case cmd&0x80 != 0:
			var off, size int
			if cmd&0x01 != 0 {
				if pos >= len(delta) {
					return nil, errs.ErrCorruptDelta
				}
				off = int(delta[pos])
				pos++
			}
			if cmd&0x02 != 0 {
				if pos >= len(delta) {
					return nil, errs.ErrCorruptDelta
				}
				off |= int(delta[pos]) << 8
				pos++
			}
			if cmd&0x04 != 0 {
				if pos >= len(delta) {
					return nil, errs.ErrCorruptDelta
				}
				off |= int(delta[pos]) << 16
				pos++
			}
			if cmd&0x08 != 0 {
				if pos >= len(delta) {
					return nil, errs.ErrCorruptDelta
				}
				off |= int(delta[pos]) << 24
				pos++
			}

			if cmd&0x10 != 0 {
				if pos >= len(delta) {
					return nil, errs.ErrCorruptDelta
				}
				size = int(delta[pos])
				pos++
			}
			if cmd&0x20 != 0 {
				if pos >= len(delta) {
					return nil, errs.ErrCorruptDelta
				}
				size |= int(delta[pos]) << 8
				pos++
			}
			if cmd&0x40 != 0 {
				if pos >= len(delta) {
					return nil, errs.ErrCorruptDelta
				}
				size |= int(delta[pos]) << 16
				pos++
			}
			if size == 0 {
				size = 0x10000
			}

			if int64(off)+int64(size) > int64(len(ref)) {
				return nil, fmt.Errorf("%w: copy [%d, %d) outside reference of %d bytes",
					errs.ErrCorruptDelta, off, off+size, len(ref))
			}
			out = append(out, ref[off:off+size]...)

		case cmd != 0:
			n := int(cmd)
			if pos+n > len(delta) {
				return nil, fmt.Errorf("%w: insert of %d literals truncated", errs.ErrCorruptDelta, n)
			}
			out = append(out, delta[pos:pos+n]...)
			pos += n

		default:
			// insert count zero is reserved
			return nil, fmt.Errorf("%w: reserved zero opcode", errs.ErrCorruptDelta)
		}
	}

	if uint64(len(out)) != targetSize {
		return nil, fmt.Errorf("%w: reconstructed %d bytes, header declares %d",
			errs.ErrSizeMismatch, len(out), targetSize)
	}

	return out, nil
}
