package delta

import (
	"testing"

	"github.com/arloliu/bdelta/errs"
	"github.com/arloliu/bdelta/format"
	"github.com/arloliu/bdelta/internal/outbuf"
	"github.com/stretchr/testify/require"
)

func TestVarint_RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		v       uint64
		encoded []byte
	}{
		{"zero is one explicit byte", 0, []byte{0x00}},
		{"single byte max", 0x7f, []byte{0x7f}},
		{"two bytes min", 0x80, []byte{0x80, 0x01}},
		{"sixteen", 16, []byte{0x10}},
		{"block boundary", 65536, []byte{0x80, 0x80, 0x04}},
		{"large size", 70000, []byte{0xf0, 0xa2, 0x04}},
		{"full 64-bit value", 0xffffffffffffffff, []byte{
			0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := outbuf.New(64, format.MaxOpSize, 0)
			writeVarint(out, tt.v)
			require.Equal(t, tt.encoded, out.Bytes())

			v, pos, err := readVarint(out.Bytes(), 0)
			require.NoError(t, err)
			require.Equal(t, tt.v, v)
			require.Equal(t, len(tt.encoded), pos)
		})
	}
}

func TestReadVarint_Corrupt(t *testing.T) {
	// continuation bit set on the final byte
	_, _, err := readVarint([]byte{0x80, 0x80}, 0)
	require.ErrorIs(t, err, errs.ErrCorruptDelta)

	// more than 64 bits of payload
	over := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}
	_, _, err = readVarint(over, 0)
	require.ErrorIs(t, err, errs.ErrCorruptDelta)
}

func TestSizes(t *testing.T) {
	out := outbuf.New(64, format.MaxOpSize, 0)
	writeVarint(out, 12345)
	writeVarint(out, 70000)

	refSize, targetSize, err := Sizes(out.Bytes())
	require.NoError(t, err)
	require.Equal(t, uint64(12345), refSize)
	require.Equal(t, uint64(70000), targetSize)

	_, _, err = Sizes([]byte{0x80})
	require.ErrorIs(t, err, errs.ErrCorruptDelta)
}
