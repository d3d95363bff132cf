package cursor

import (
	"math"
	"testing"

	"github.com/WarpZephyr/BinaryMemory/errs"
	"github.com/stretchr/testify/require"
)

func TestVariableIntWidths(t *testing.T) {
	tests := []struct {
		size  int
		value int64
	}{
		{1, -128},
		{1, 127},
		{2, -32768},
		{4, math.MaxInt32},
		{8, math.MinInt64},
	}

	for _, tt := range tests {
		r, w, _ := newPair(t, 16, WithVariableIntSize(tt.size))

		require.NoError(t, w.WriteVariableInt(tt.value))
		require.Equal(t, int64(tt.size), w.Position())

		got, err := r.ReadVariableInt()
		require.NoError(t, err)
		require.Equal(t, tt.value, got)
	}
}

func TestVariableUintWidths(t *testing.T) {
	for _, size := range []int{1, 2, 4, 8} {
		r, w, _ := newPair(t, 16, WithVariableIntSize(size))

		var maxValue uint64 = math.MaxUint64
		if size < 8 {
			maxValue = 1<<(8*size) - 1
		}

		require.NoError(t, w.WriteVariableUint(maxValue))

		got, err := r.ReadVariableUint()
		require.NoError(t, err)
		require.Equal(t, maxValue, got)
	}
}

func TestVariableIntRangeChecked(t *testing.T) {
	_, w, _ := newPair(t, 16, WithVariableIntSize(1))

	require.ErrorIs(t, w.WriteVariableInt(128), errs.ErrDataIntegrity)
	require.ErrorIs(t, w.WriteVariableInt(-129), errs.ErrDataIntegrity)
	require.ErrorIs(t, w.WriteVariableUint(256), errs.ErrDataIntegrity)
	require.Equal(t, int64(0), w.Position())
}

func TestVariablePreciseWidths(t *testing.T) {
	for _, size := range []int{4, 8} {
		r, w, _ := newPair(t, 16, WithVariablePreciseSize(size))

		require.NoError(t, w.WriteVariablePrecise(1.5))

		got, err := r.ReadVariablePrecise()
		require.NoError(t, err)
		require.Equal(t, 1.5, got)
	}
}

func TestVariablePreciseHalf(t *testing.T) {
	tests := []float64{0, 1, -1, 0.5, 1.5, 65504, -65504}

	for _, v := range tests {
		r, w, _ := newPair(t, 16, WithVariablePreciseSize(2))

		require.NoError(t, w.WriteVariablePrecise(v))
		require.Equal(t, int64(2), w.Position())

		got, err := r.ReadVariablePrecise()
		require.NoError(t, err)
		require.Equal(t, v, got, "half-representable value must survive exactly")
	}
}

func TestHalfSpecials(t *testing.T) {
	require.Equal(t, float32(math.Inf(1)), halfToFloat32(0x7C00))
	require.Equal(t, float32(math.Inf(-1)), halfToFloat32(0xFC00))
	require.True(t, math.IsNaN(float64(halfToFloat32(0x7E00))))
	require.Equal(t, float32(0), halfToFloat32(0x0000))
	require.Equal(t, uint16(0x7C00), float32ToHalf(float32(math.Inf(1))))
	require.Equal(t, uint16(0x7E00), float32ToHalf(float32(math.NaN())))

	// Overflowing magnitudes clamp to infinity.
	require.Equal(t, uint16(0x7C00), float32ToHalf(1e10))

	// Subnormal round trip: smallest positive half.
	require.Equal(t, float32(1.0/(1<<24)), halfToFloat32(0x0001))
}

func TestInvalidVariableSizes(t *testing.T) {
	_, err := NewReader(nil, WithVariableIntSize(3))
	require.ErrorIs(t, err, errs.ErrState)

	_, err = NewReader(nil, WithVariablePreciseSize(1))
	require.ErrorIs(t, err, errs.ErrState)

	r, err := NewReader(make([]byte, 8))
	require.NoError(t, err)
	require.ErrorIs(t, r.SetVariableIntSize(5), errs.ErrState)
	require.ErrorIs(t, r.SetVariablePreciseSize(16), errs.ErrState)
}
