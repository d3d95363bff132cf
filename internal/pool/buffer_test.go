package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetReturnsEmptyBuffer(t *testing.T) {
	bb := Get()
	defer Put(bb)

	require.Zero(t, bb.Len())
}

func TestWriteAndReset(t *testing.T) {
	bb := Get()
	defer Put(bb)

	bb.Write([]byte("abc"))
	bb.WriteByte('d')
	require.Equal(t, []byte("abcd"), bb.Bytes())
	require.Equal(t, 4, bb.Len())

	bb.Reset()
	require.Zero(t, bb.Len())
}

func TestExtendZeroesTail(t *testing.T) {
	bb := Get()
	defer Put(bb)

	bb.Write([]byte{1, 2})
	tail := bb.Extend(3)
	require.Equal(t, []byte{0, 0, 0}, tail)
	require.Equal(t, []byte{1, 2, 0, 0, 0}, bb.Bytes())

	tail[0] = 9
	require.Equal(t, []byte{1, 2, 9, 0, 0}, bb.Bytes())
}

func TestExtendGrowsPastCapacity(t *testing.T) {
	bb := &ByteBuffer{B: make([]byte, 0, 4)}

	bb.Write([]byte{1, 2, 3})
	tail := bb.Extend(DefaultSize)
	require.Len(t, tail, DefaultSize)
	require.Equal(t, []byte{1, 2, 3}, bb.Bytes()[:3])
}

func TestPutDropsOversized(t *testing.T) {
	// Must not panic; oversized buffers are simply discarded.
	Put(&ByteBuffer{B: make([]byte, MaxThreshold+1)})
	Put(nil)
}
