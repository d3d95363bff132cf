package fixed

import (
	"math"
	"testing"

	"github.com/WarpZephyr/BinaryMemory/endian"
	"github.com/stretchr/testify/require"
)

func TestSizeOf(t *testing.T) {
	require.Equal(t, 1, SizeOf[int8]())
	require.Equal(t, 1, SizeOf[uint8]())
	require.Equal(t, 2, SizeOf[int16]())
	require.Equal(t, 4, SizeOf[uint32]())
	require.Equal(t, 4, SizeOf[float32]())
	require.Equal(t, 8, SizeOf[int64]())
	require.Equal(t, 8, SizeOf[float64]())
}

func roundTrip[T Scalar](t *testing.T, v T, order endian.EndianEngine) {
	t.Helper()

	buf := make([]byte, SizeOf[T]())
	Encode(buf, v, order)
	require.Equal(t, v, Decode[T](buf, order))
}

func TestRoundTripBoundaries(t *testing.T) {
	for _, order := range []endian.EndianEngine{endian.Little(), endian.Big()} {
		roundTrip[int8](t, math.MinInt8, order)
		roundTrip[int8](t, math.MaxInt8, order)
		roundTrip[int8](t, -1, order)
		roundTrip[uint8](t, 0, order)
		roundTrip[uint8](t, math.MaxUint8, order)
		roundTrip[int16](t, math.MinInt16, order)
		roundTrip[int16](t, -1, order)
		roundTrip[uint16](t, math.MaxUint16, order)
		roundTrip[int32](t, math.MinInt32, order)
		roundTrip[int32](t, -1, order)
		roundTrip[uint32](t, math.MaxUint32, order)
		roundTrip[int64](t, math.MinInt64, order)
		roundTrip[int64](t, -1, order)
		roundTrip[uint64](t, math.MaxUint64, order)
		roundTrip[float32](t, math.MaxFloat32, order)
		roundTrip[float32](t, math.SmallestNonzeroFloat32, order)
		roundTrip[float64](t, math.MaxFloat64, order)
		roundTrip[float64](t, math.SmallestNonzeroFloat64, order)
	}
}

func TestEncodeByteOrder(t *testing.T) {
	buf := make([]byte, 4)

	Encode[uint32](buf, 0x11223344, endian.Big())
	require.Equal(t, []byte{0x11, 0x22, 0x33, 0x44}, buf)

	Encode[uint32](buf, 0x11223344, endian.Little())
	require.Equal(t, []byte{0x44, 0x33, 0x22, 0x11}, buf)
}

func TestFloatBitPattern(t *testing.T) {
	buf := make([]byte, 8)

	Encode(buf, float64(1.5), endian.Little())
	require.Equal(t, math.Float64bits(1.5), endian.Little().Uint64(buf))

	Encode(buf[:4], float32(-2.25), endian.Big())
	require.Equal(t, math.Float32bits(-2.25), endian.Big().Uint32(buf[:4]))
}

func TestSliceRoundTrip(t *testing.T) {
	src := []uint16{0, 1, 0x1234, math.MaxUint16}
	buf := make([]byte, len(src)*2)

	for _, order := range []endian.EndianEngine{endian.Little(), endian.Big()} {
		EncodeSlice(buf, src, order)

		dst := make([]uint16, len(src))
		DecodeSlice(buf, dst, order)
		require.Equal(t, src, dst)
	}
}

func TestNaNSurvivesTransport(t *testing.T) {
	buf := make([]byte, 8)
	nan := math.Float64frombits(0x7ff8000000000001)

	Encode(buf, nan, endian.Big())
	got := Decode[float64](buf, endian.Big())
	require.Equal(t, math.Float64bits(nan), math.Float64bits(got))
}
