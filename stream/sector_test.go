package stream

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

// growable is a minimal in-memory Stream that extends on write, standing in
// for a file during sector tests.
type growable struct {
	data []byte
	pos  int64
}

func (g *growable) Read(p []byte) (int, error) {
	if g.pos >= int64(len(g.data)) {
		return 0, io.EOF
	}
	n := copy(p, g.data[g.pos:])
	g.pos += int64(n)

	return n, nil
}

func (g *growable) Write(p []byte) (int, error) {
	end := g.pos + int64(len(p))
	if end > int64(len(g.data)) {
		grown := make([]byte, end)
		copy(grown, g.data)
		g.data = grown
	}
	n := copy(g.data[g.pos:], p)
	g.pos += int64(n)

	return n, nil
}

func (g *growable) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		g.pos = offset
	case io.SeekCurrent:
		g.pos += offset
	case io.SeekEnd:
		g.pos = int64(len(g.data)) + offset
	}

	return g.pos, nil
}

func TestNewSectorStreamValidation(t *testing.T) {
	_, err := NewSectorStream(&growable{}, 0)
	require.Error(t, err)

	_, err = NewSectorStream(&growable{}, -512)
	require.Error(t, err)
}

func TestPadSectorExtends(t *testing.T) {
	base := &growable{}
	s, err := NewSectorStream(base, 2048, WithSectorPadding(0xAA))
	require.NoError(t, err)

	_, err = s.WriteUnaligned(make([]byte, 10))
	require.NoError(t, err)

	require.NoError(t, s.PadSector())

	pos, err := s.BytePosition()
	require.NoError(t, err)
	require.Equal(t, int64(2048), pos)
	require.Len(t, base.data, 2048)

	for i := 10; i < 2048; i++ {
		require.Equal(t, byte(0xAA), base.data[i], "pad byte at %d", i)
	}
}

func TestPadSectorAlreadyAligned(t *testing.T) {
	base := &growable{}
	s, err := NewSectorStream(base, 2048)
	require.NoError(t, err)

	_, err = s.WriteUnaligned(make([]byte, 2048))
	require.NoError(t, err)

	require.NoError(t, s.PadSector())

	pos, err := s.BytePosition()
	require.NoError(t, err)
	require.Equal(t, int64(2048), pos)
	require.Len(t, base.data, 2048)
}

func TestPadSectorRepositionsWithoutOverwrite(t *testing.T) {
	base := &growable{}
	s, err := NewSectorStream(base, 16, WithSectorPadding(0xFF))
	require.NoError(t, err)

	// Lay down two full sectors, then move back into the first.
	_, err = s.WriteUnaligned([]byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)
	_, err = s.Seek(4, io.SeekStart)
	require.NoError(t, err)

	require.NoError(t, s.PadSector())

	pos, err := s.BytePosition()
	require.NoError(t, err)
	require.Equal(t, int64(16), pos)

	// Existing bytes between position and boundary must be untouched.
	require.Equal(t, []byte("0123456789abcdef0123456789abcdef"), base.data)
}

func TestAlignSector(t *testing.T) {
	base := &growable{data: make([]byte, 4096)}
	s, err := NewSectorStream(base, 2048)
	require.NoError(t, err)

	_, err = s.Seek(10, io.SeekStart)
	require.NoError(t, err)
	require.NoError(t, s.AlignSector())

	pos, err := s.BytePosition()
	require.NoError(t, err)
	require.Equal(t, int64(2048), pos)

	// Aligned position is a no-op.
	require.NoError(t, s.AlignSector())
	pos, err = s.BytePosition()
	require.NoError(t, err)
	require.Equal(t, int64(2048), pos)
}

func TestSectorUnits(t *testing.T) {
	base := &growable{data: make([]byte, 5000)}
	s, err := NewSectorStream(base, 2048)
	require.NoError(t, err)

	count, err := s.SectorCount()
	require.NoError(t, err)
	require.Equal(t, int64(3), count)

	sector, err := s.SeekSector(2)
	require.NoError(t, err)
	require.Equal(t, int64(2), sector)

	pos, err := s.BytePosition()
	require.NoError(t, err)
	require.Equal(t, int64(4096), pos)

	sectors, err := s.SectorPosition()
	require.NoError(t, err)
	require.Equal(t, int64(2), sectors)
}

func TestAlignedReadWrite(t *testing.T) {
	base := &growable{}
	s, err := NewSectorStream(base, 8)
	require.NoError(t, err)

	_, err = s.WriteUnaligned([]byte{1, 2, 3})
	require.NoError(t, err)

	// Aligned write pads to offset 8 first.
	_, err = s.Write([]byte{9, 9})
	require.NoError(t, err)
	require.Len(t, base.data, 10)
	require.Equal(t, []byte{9, 9}, base.data[8:10])

	// Aligned read skips to the next boundary first.
	_, err = s.Seek(1, io.SeekStart)
	require.NoError(t, err)

	buf := make([]byte, 2)
	_, err = s.Read(buf)
	require.NoError(t, err)
	require.Equal(t, []byte{9, 9}, buf)
}
