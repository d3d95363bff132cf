package cursor

import (
	"testing"

	"github.com/WarpZephyr/BinaryMemory/errs"
	"github.com/stretchr/testify/require"
)

func TestStepInStepOut(t *testing.T) {
	r, err := NewReader(make([]byte, 100))
	require.NoError(t, err)
	require.NoError(t, r.Advance(10))

	require.NoError(t, r.StepIn(50))
	require.Equal(t, int64(50), r.Position())
	require.Equal(t, 1, r.StepDepth())

	require.NoError(t, r.StepOut())
	require.Equal(t, int64(10), r.Position())
	require.Equal(t, 0, r.StepDepth())
}

func TestStepInNests(t *testing.T) {
	r, err := NewReader(make([]byte, 100))
	require.NoError(t, err)

	require.NoError(t, r.StepIn(10))
	require.NoError(t, r.StepIn(20))
	require.NoError(t, r.StepIn(30))
	require.Equal(t, 3, r.StepDepth())

	require.NoError(t, r.StepOut())
	require.Equal(t, int64(20), r.Position())
	require.NoError(t, r.StepOut())
	require.Equal(t, int64(10), r.Position())
	require.NoError(t, r.StepOut())
	require.Equal(t, int64(0), r.Position())
}

func TestStepOutEmptyStack(t *testing.T) {
	r, err := NewReader(make([]byte, 10))
	require.NoError(t, err)

	require.ErrorIs(t, r.StepOut(), errs.ErrState)
}

func TestStepInOutOfBounds(t *testing.T) {
	r, err := NewReader(make([]byte, 10))
	require.NoError(t, err)
	require.NoError(t, r.Advance(3))

	require.ErrorIs(t, r.StepIn(11), errs.ErrOutOfBounds)
	require.Equal(t, int64(3), r.Position())
	require.Equal(t, 0, r.StepDepth(), "failed step-in must not push a bookmark")
}

func TestStepInOnWriter(t *testing.T) {
	_, w, buf := newPair(t, 16)

	require.NoError(t, w.Advance(8))
	require.NoError(t, w.StepIn(0))
	require.NoError(t, Write[uint32](w, 0xFFFFFFFF))
	require.NoError(t, w.StepOut())

	require.Equal(t, int64(8), w.Position())
	require.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, buf[:4])
}

// Parsing an offset-addressed structure: the pointer field's enclosing
// context resumes exactly where it left off.
func TestStepInParsePointee(t *testing.T) {
	data := make([]byte, 32)
	data[0] = 16 // offset to a terminated string
	copy(data[16:], "hi\x00")

	r, err := NewReader(data)
	require.NoError(t, err)

	offset, err := Read[uint32](r)
	require.NoError(t, err)

	require.NoError(t, r.StepIn(int64(offset)))
	name, err := r.ReadString()
	require.NoError(t, err)
	require.Equal(t, "hi", name)
	require.NoError(t, r.StepOut())

	require.Equal(t, int64(4), r.Position())
}
