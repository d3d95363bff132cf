package stream

import (
	"io"

	"github.com/WarpZephyr/BinaryMemory/errs"
	"github.com/WarpZephyr/BinaryMemory/internal/options"
)

// SectorStream exposes a wrapped stream in fixed-size sector units while
// operating byte-accurately underneath. Data written through it starts on a
// sector boundary; alignment gaps on the write path are filled with a
// configurable padding byte.
//
// The stream keeps no position of its own: the current byte offset is always
// the wrapped stream's offset.
type SectorStream struct {
	base       Stream
	sectorSize int64
	padByte    byte
}

var _ Stream = (*SectorStream)(nil)

// SectorOption configures a SectorStream at construction.
type SectorOption = options.Option[*SectorStream]

// WithSectorPadding sets the byte used to fill alignment gaps on the write
// path. The default is zero.
func WithSectorPadding(b byte) SectorOption {
	return options.NoError(func(s *SectorStream) {
		s.padByte = b
	})
}

// NewSectorStream wraps base in a sector view with the given sector size in
// bytes. The sector size must be positive and is fixed for the stream's
// lifetime.
func NewSectorStream(base Stream, sectorSize int64, opts ...SectorOption) (*SectorStream, error) {
	if sectorSize <= 0 {
		return nil, &errs.StateError{Op: "sector stream", Detail: "sector size must be positive"}
	}

	s := &SectorStream{base: base, sectorSize: sectorSize}
	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}

	return s, nil
}

// SectorSize returns the fixed sector size in bytes.
func (s *SectorStream) SectorSize() int64 { return s.sectorSize }

// PadByte returns the configured padding byte.
func (s *SectorStream) PadByte() byte { return s.padByte }

// BytePosition returns the wrapped stream's current byte offset.
func (s *SectorStream) BytePosition() (int64, error) {
	return s.base.Seek(0, io.SeekCurrent)
}

// SectorPosition returns the current position in sector units, rounded up to
// the sector containing the current byte.
func (s *SectorStream) SectorPosition() (int64, error) {
	pos, err := s.BytePosition()
	if err != nil {
		return 0, err
	}

	return ceilDiv(pos, s.sectorSize), nil
}

// SectorCount returns the stream length in sector units: ceil(byteLength / sectorSize).
func (s *SectorStream) SectorCount() (int64, error) {
	length, err := Length(s.base)
	if err != nil {
		return 0, err
	}

	return ceilDiv(length, s.sectorSize), nil
}

// SeekSector positions the stream at the start of the given sector and
// returns the sector index. Byte-unit positioning goes through Seek.
func (s *SectorStream) SeekSector(sector int64) (int64, error) {
	if sector < 0 {
		return 0, &errs.BoundsError{Op: "seek sector", Want: sector}
	}

	if _, err := s.base.Seek(sector*s.sectorSize, io.SeekStart); err != nil {
		return 0, err
	}

	return sector, nil
}

// AlignSector advances the byte position to the next sector boundary without
// writing anything. Already-aligned positions are left untouched. Used on the
// read path before sector-aligned data.
func (s *SectorStream) AlignSector() error {
	pos, err := s.BytePosition()
	if err != nil {
		return err
	}

	gap := s.gapTo(pos)
	if gap == 0 {
		return nil
	}

	_, err = s.base.Seek(pos+gap, io.SeekStart)

	return err
}

// PadSector moves the byte position to the next sector boundary on the write
// path. If the boundary lies beyond the current stream length the gap is
// physically written with the padding byte; otherwise the position simply
// moves, leaving existing bytes untouched.
func (s *SectorStream) PadSector() error {
	pos, err := s.BytePosition()
	if err != nil {
		return err
	}

	gap := s.gapTo(pos)
	if gap == 0 {
		return nil
	}

	length, err := Length(s.base)
	if err != nil {
		return err
	}

	if pos+gap <= length {
		_, err = s.base.Seek(pos+gap, io.SeekStart)
		return err
	}

	pad := make([]byte, gap)
	if s.padByte != 0 {
		for i := range pad {
			pad[i] = s.padByte
		}
	}

	_, err = s.base.Write(pad)

	return err
}

// Read aligns to the next sector boundary, then reads from the wrapped stream.
func (s *SectorStream) Read(p []byte) (int, error) {
	if err := s.AlignSector(); err != nil {
		return 0, err
	}

	return s.base.Read(p)
}

// Write pads to the next sector boundary, then writes to the wrapped stream.
func (s *SectorStream) Write(p []byte) (int, error) {
	if err := s.PadSector(); err != nil {
		return 0, err
	}

	return s.base.Write(p)
}

// ReadUnaligned reads from the current byte position without aligning first.
func (s *SectorStream) ReadUnaligned(p []byte) (int, error) {
	return s.base.Read(p)
}

// WriteUnaligned writes at the current byte position without padding first.
func (s *SectorStream) WriteUnaligned(p []byte) (int, error) {
	return s.base.Write(p)
}

// Seek positions the wrapped stream by byte offset.
func (s *SectorStream) Seek(offset int64, whence int) (int64, error) {
	return s.base.Seek(offset, whence)
}

// gapTo returns the distance from pos to the next sector boundary, zero when
// pos is already aligned.
func (s *SectorStream) gapTo(pos int64) int64 {
	rem := pos % s.sectorSize
	if rem == 0 {
		return 0
	}

	return s.sectorSize - rem
}

func ceilDiv(n, d int64) int64 {
	return (n + d - 1) / d
}
