package delta

import (
	"fmt"

	"github.com/arloliu/bdelta/errs"
	"github.com/arloliu/bdelta/format"
)

// Op is one decoded delta opcode. For an insert, Lit holds the literal
// bytes and Size their count. For a copy, Offset and Size name the
// reference range to copy and Lit is nil.
type Op struct {
	Kind   format.OpKind
	Offset uint32
	Size   uint32
	Lit    []byte
}

// Scan decodes the opcode stream of a delta without materializing the
// target. The returned literal slices alias the delta buffer.
//
// Scan validates framing only: varint header, opcode completeness and the
// reserved zero insert count. It does not check copy ranges against any
// reference; Apply does that during reconstruction.
func Scan(delta []byte) ([]Op, error) {
	_, pos, err := readVarint(delta, 0)
	if err != nil {
		return nil, fmt.Errorf("reading reference size: %w", err)
	}
	_, pos, err = readVarint(delta, pos)
	if err != nil {
		return nil, fmt.Errorf("reading target size: %w", err)
	}

	var ops []Op
	for pos < len(delta) {
		cmd := delta[pos]
		pos++

		switch {
		case cmd&0x80 != 0:
			var off, size uint32
			var shift uint
			for bit := byte(0x01); bit <= 0x08; bit <<= 1 {
				if cmd&bit != 0 {
					if pos >= len(delta) {
						return nil, errs.ErrCorruptDelta
					}
					off |= uint32(delta[pos]) << shift
					pos++
				}
				shift += 8
			}
			shift = 0
			for bit := byte(0x10); bit <= 0x40; bit <<= 1 {
				if cmd&bit != 0 {
					if pos >= len(delta) {
						return nil, errs.ErrCorruptDelta
					}
					size |= uint32(delta[pos]) << shift
					pos++
				}
				shift += 8
			}
			if size == 0 {
				size = format.MaxCopySize
			}
			ops = append(ops, Op{Kind: format.OpCopy, Offset: off, Size: size})

		case cmd != 0:
			n := int(cmd)
			if pos+n > len(delta) {
				return nil, fmt.Errorf("%w: insert of %d literals truncated", errs.ErrCorruptDelta, n)
			}
			ops = append(ops, Op{Kind: format.OpInsert, Size: uint32(n), Lit: delta[pos : pos+n]})
			pos += n

		default:
			return nil, fmt.Errorf("%w: reserved zero opcode", errs.ErrCorruptDelta)
		}
	}

	return ops, nil
}
