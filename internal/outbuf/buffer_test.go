package outbuf

import (
	"testing"

	"github.com/arloliu/bdelta/errs"
	"github.com/stretchr/testify/require"
)

const headroom = 7

func TestBuffer_WriteAndPatch(t *testing.T) {
	b := New(64, headroom, 0)

	b.WriteByte(0) // placeholder
	b.WriteByte('x')
	b.WriteByte('y')
	b.Set(0, 2)

	require.Equal(t, 3, b.Len())
	require.Equal(t, []byte{2, 'x', 'y'}, b.Bytes())
	require.Equal(t, byte('x'), b.At(1))
}

func TestBuffer_GrowsUnlimited(t *testing.T) {
	b := New(16, headroom, 0)

	for i := 0; i < 10000; i++ {
		b.WriteByte(byte(i))
		require.NoError(t, b.Reserve())
	}
	require.Equal(t, 10000, b.Len())
}

func TestBuffer_InitialClampAgainstCeiling(t *testing.T) {
	// a ceiling below the initial capacity clamps it to max+headroom+1
	b := New(8192, headroom, 10)

	for i := 0; i < 10; i++ {
		b.WriteByte(0xaa)
		require.NoError(t, b.Reserve())
	}

	// the eleventh byte pushes the length past the ceiling
	b.WriteByte(0xaa)
	require.ErrorIs(t, b.Reserve(), errs.ErrDeltaTooLarge)
}

func TestBuffer_CeilingAboveInitialCapacity(t *testing.T) {
	// ceiling larger than the initial capacity only bites after growth
	b := New(16, headroom, 20)

	var err error
	n := 0
	for err == nil && n < 100 {
		b.WriteByte(1)
		n++
		err = b.Reserve()
	}

	require.ErrorIs(t, err, errs.ErrDeltaTooLarge)
	require.Greater(t, b.Len(), 20)
	require.LessOrEqual(t, b.Len(), 20+headroom+1)
}

func TestBuffer_ReserveKeepsHeadroom(t *testing.T) {
	b := New(16, headroom, 0)

	for i := 0; i < 1000; i++ {
		require.NoError(t, b.Reserve())
		// headroom bytes must be writable without another Reserve
		for j := 0; j < headroom; j++ {
			b.WriteByte(byte(j))
		}
	}
	require.Equal(t, 1000*headroom, b.Len())
}
