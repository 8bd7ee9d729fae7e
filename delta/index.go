package delta

import (
	"github.com/arloliu/bdelta/format"
	"github.com/arloliu/bdelta/internal/checksum"
)

// bucketPrime spreads the 32-bit block fingerprint over the bucket space
// (Fibonacci-style multiplicative mix). The value is fixed. It only decides
// which records share a bucket: the matcher skips records whose
// fingerprint differs, and records with equal fingerprints always share a
// bucket in low-to-high offset order, so neither the wire format nor the
// encoder's output depends on it.
const bucketPrime = 0x9e370001

// blockIndex maps block fingerprints to reference offsets. Each bucket
// holds a chain of records ordered from low to high offset; combined with
// the matcher's strict greater-than comparison this fixes which offset is
// emitted when several matches tie on length, keeping the output
// deterministic and byte-identical across runs.
type blockIndex struct {
	bits    uint32
	buckets []*record
	arena   *arena
}

// hashBits returns the smallest bit count whose bucket space holds n
// entries, at least 1 and at most 32.
func hashBits(n int) uint32 {
	val, bits := 1, uint32(0)
	for val < n && bits < 32 {
		val <<= 1
		bits++
	}
	if bits == 0 {
		return 1
	}

	return bits
}

func bucketOf(fp uint32, bits uint32) uint32 {
	return (fp * bucketPrime) >> (32 - bits)
}

// newBlockIndex fingerprints every block of the reference and links the
// records into their buckets.
//
// Blocks start at multiples of BlockSize from the front of the buffer and
// are walked from the end: the walk starts at the last block boundary
// (stepping one block back when the size is an exact multiple, so the
// start is always inside the buffer) and proceeds to the front in
// BlockSize steps. Only the final, highest-offset block can be
// shorter than BlockSize, and only when the size is not a multiple of it.
// Prepending during the reverse walk yields the low-to-high chain order
// the matcher relies on.
func newBlockIndex(ref []byte) *blockIndex {
	bits := hashBits(len(ref)/format.BlockSize + 1)
	buckets := make([]*record, 1<<bits)
	ar := newArena(len(buckets)/4 + 1)

	pos := (len(ref) / format.BlockSize) * format.BlockSize
	if pos == len(ref) {
		pos -= format.BlockSize
	}

	for ; pos >= 0; pos -= format.BlockSize {
		end := pos + format.BlockSize
		if end > len(ref) {
			end = len(ref)
		}

		r := ar.alloc()
		r.fp = checksum.Sum(ref[pos:end])
		r.off = uint32(pos)

		i := bucketOf(r.fp, bits)
		r.next = buckets[i]
		buckets[i] = r
	}

	return &blockIndex{bits: bits, buckets: buckets, arena: ar}
}

// probe returns the head of the chain for the given fingerprint. Chains
// may contain records with different fingerprints that hash to the same
// bucket; callers must compare fp before using a record.
func (x *blockIndex) probe(fp uint32) *record {
	return x.buckets[bucketOf(fp, x.bits)]
}

// release drops the bucket array and every record.
func (x *blockIndex) release() {
	x.arena.releaseAll()
	x.buckets = nil
}
