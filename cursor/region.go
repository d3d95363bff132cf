package cursor

import (
	"fmt"
	"io"
)

// region is the addressable byte backing behind a cursor: either a fixed
// in-memory slice or a seekable stream. All access is by absolute offset;
// the cursor owns the position.
type region interface {
	// readAt fills b entirely from offset off or fails.
	readAt(b []byte, off int64) error

	// writeAt stores b entirely at offset off or fails. Memory regions never
	// grow; stream regions may extend when writing at the current end.
	writeAt(b []byte, off int64) error

	// length returns the current byte length of the backing.
	length() int64

	// growable reports whether writes at the current end extend the backing.
	growable() bool
}

// memoryRegion is a fixed-capacity slice backing. The cursor layer performs
// all bounds checking before calling in.
type memoryRegion struct {
	data []byte
}

func (m *memoryRegion) readAt(b []byte, off int64) error {
	copy(b, m.data[off:])
	return nil
}

func (m *memoryRegion) writeAt(b []byte, off int64) error {
	copy(m.data[off:], b)
	return nil
}

func (m *memoryRegion) length() int64 { return int64(len(m.data)) }

func (m *memoryRegion) growable() bool { return false }

// streamRegion adapts a seekable stream to absolute-offset access. The
// wrapped stream's own position is moved on every call, so stream transforms
// layered on the same substrate observe the cursor's movement.
type streamRegion struct {
	src    io.ReadSeeker
	dst    io.Writer // nil for read-only backings
	seeker io.Seeker
	size   int64 // cached length, extended by writes past the end
}

func newStreamRegion(src io.ReadSeeker, dst io.Writer) (*streamRegion, error) {
	end, err := src.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("stream region: %w", err)
	}

	return &streamRegion{src: src, dst: dst, seeker: src, size: end}, nil
}

func (s *streamRegion) readAt(b []byte, off int64) error {
	if _, err := s.seeker.Seek(off, io.SeekStart); err != nil {
		return err
	}

	_, err := io.ReadFull(s.src, b)

	return err
}

func (s *streamRegion) writeAt(b []byte, off int64) error {
	if _, err := s.seeker.Seek(off, io.SeekStart); err != nil {
		return err
	}

	if _, err := s.dst.Write(b); err != nil {
		return err
	}

	if end := off + int64(len(b)); end > s.size {
		s.size = end
	}

	return nil
}

func (s *streamRegion) length() int64 { return s.size }

func (s *streamRegion) growable() bool { return s.dst != nil }
