package delta

import (
	"bytes"
	"testing"

	"github.com/arloliu/bdelta/format"
	"github.com/arloliu/bdelta/internal/checksum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashBits(t *testing.T) {
	tests := []struct {
		n    int
		bits uint32
	}{
		{0, 1},
		{1, 1},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 3},
		{1024, 10},
		{1025, 11},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.bits, hashBits(tt.n), "hashBits(%d)", tt.n)
	}
}

// collectRecords walks every bucket chain and returns the stored offsets.
func collectRecords(x *blockIndex) []uint32 {
	var offs []uint32
	for _, head := range x.buckets {
		for r := head; r != nil; r = r.next {
			offs = append(offs, r.off)
		}
	}

	return offs
}

func TestBlockIndex_TailAnchoredBlocks(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		records int
	}{
		{"below one block", 6, 1},
		{"exactly one block", 16, 1},
		{"one block plus tail", 20, 2},
		{"two blocks", 32, 2},
		{"two blocks plus tail", 40, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := make([]byte, tt.size)
			for i := range ref {
				ref[i] = byte(i)
			}

			x := newBlockIndex(ref)
			defer x.release()

			offs := collectRecords(x)
			require.Len(t, offs, tt.records)
			for _, off := range offs {
				assert.Less(t, int(off), tt.size)
				assert.Zero(t, off%format.BlockSize, "blocks are front-aligned, only the last may be short")
			}
		})
	}
}

func TestBlockIndex_ChainOrderLowToHigh(t *testing.T) {
	// identical blocks share a fingerprint and therefore a bucket
	block := []byte("0123456789ABCDEF")
	ref := bytes.Repeat(block, 4)

	x := newBlockIndex(ref)
	defer x.release()

	fp := checksum.Sum(block)
	var offs []uint32
	for r := x.probe(fp); r != nil; r = r.next {
		if r.fp == fp {
			offs = append(offs, r.off)
		}
	}

	// prepended during the reverse walk, so head to tail runs low to high
	require.Equal(t, []uint32{0, 16, 32, 48}, offs)
}

func TestBlockIndex_ProbeFindsEveryBlock(t *testing.T) {
	ref := make([]byte, 1024)
	for i := range ref {
		ref[i] = byte(i * 31)
	}

	x := newBlockIndex(ref)
	defer x.release()

	for pos := 0; pos < len(ref); pos += format.BlockSize {
		fp := checksum.Sum(ref[pos : pos+format.BlockSize])
		found := false
		for r := x.probe(fp); r != nil; r = r.next {
			if r.fp == fp && r.off == uint32(pos) {
				found = true
				break
			}
		}
		require.True(t, found, "block at %d not reachable through its bucket", pos)
	}
}

func TestBlockIndex_Release(t *testing.T) {
	x := newBlockIndex([]byte("abcdefghijklmnop"))
	x.release()

	require.Nil(t, x.buckets)
	require.Empty(t, x.arena.chunks)
}
