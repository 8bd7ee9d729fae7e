package format

type (
	OpKind          uint8
	CompressionType uint8
)

const (
	OpInsert OpKind = 0x1 // OpInsert copies literal bytes from the delta stream.
	OpCopy   OpKind = 0x2 // OpCopy copies a range of the reference buffer.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Wire-format constants of the delta encoding. BlockSize is the unit of
// checksum indexing over the reference buffer; it must be a power of two
// in [16, 65536] and is fixed at 16. Only the encoder's index uses it;
// the applier does not depend on it.
const (
	// BlockSize is the width of one reference block in bytes.
	BlockSize = 16

	// MaxInsertRun is the largest literal count a single insert opcode can
	// carry; the count lives in the low 7 bits of the opcode byte.
	MaxInsertRun = 0x7f

	// MaxCopySize is the largest span a single copy opcode can express.
	// A copy whose size bits are all clear decodes to this value, not zero.
	MaxCopySize = 0x10000

	// MaxOpSize is the worst-case output cost of one opcode emission:
	// the opcode byte, four offset bytes and two size bytes.
	MaxOpSize = 7
)

func (k OpKind) String() string {
	switch k {
	case OpInsert:
		return "Insert"
	case OpCopy:
		return "Copy"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
