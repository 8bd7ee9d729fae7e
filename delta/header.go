package delta

import (
	"github.com/arloliu/bdelta/errs"
	"github.com/arloliu/bdelta/internal/outbuf"
)

// writeVarint appends v as a little-endian base-128 varint. Each byte
// carries 7 value bits; a set high bit means more bytes follow. The first
// byte is emitted unconditionally, so zero encodes as a single 0x00.
func writeVarint(out *outbuf.Buffer, v uint64) {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		out.WriteByte(b)
		if v == 0 {
			return
		}
	}
}

// readVarint decodes a little-endian base-128 varint starting at pos and
// returns the value and the position after it. A varint that runs past
// the buffer or past 64 bits is corrupt.
func readVarint(data []byte, pos int) (uint64, int, error) {
	var v uint64
	var shift uint

	for {
		if pos >= len(data) || shift >= 64 {
			return 0, 0, errs.ErrCorruptDelta
		}

		b := data[pos]
		pos++
		v |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return v, pos, nil
		}
		shift += 7
	}
}

// Sizes decodes the two header varints of a delta stream and returns the
// reference and target sizes it was produced for.
func Sizes(delta []byte) (refSize, targetSize uint64, err error) {
	refSize, pos, err := readVarint(delta, 0)
	if err != nil {
		return 0, 0, err
	}

	targetSize, _, err = readVarint(delta, pos)
	if err != nil {
		return 0, 0, err
	}

	return refSize, targetSize, nil
}
