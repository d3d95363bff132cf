// Package stream provides the byte-stream substrate and the two stream
// transforms that compose with cursor access: the sector-aligned stream and
// the bounded sub-stream.
//
// A transform owns only its own bookkeeping (sector size, window offsets);
// the current byte position always lives in the wrapped stream, so position
// changes made through an inner layer are visible through outer layers.
package stream

import (
	"io"

	"github.com/WarpZephyr/BinaryMemory/errs"
)

// Stream is the seekable byte substrate the transforms wrap. *os.File,
// *Memory, and the transforms themselves all satisfy it.
type Stream interface {
	io.Reader
	io.Writer
	io.Seeker
}

// Length returns the total byte length of s without disturbing its position.
func Length(s io.Seeker) (int64, error) {
	cur, err := s.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}

	end, err := s.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}

	if _, err := s.Seek(cur, io.SeekStart); err != nil {
		return 0, err
	}

	return end, nil
}

// Memory is a fixed-capacity in-memory Stream over a caller-supplied byte
// slice. It never grows: writes past the end fail with a BoundsError rather
// than extending the slice.
type Memory struct {
	data []byte
	pos  int64
}

var _ Stream = (*Memory)(nil)

// NewMemory creates a Memory stream over data. The stream borrows data; the
// caller keeps ownership of the slice's lifetime.
func NewMemory(data []byte) *Memory {
	return &Memory{data: data}
}

// Bytes returns the underlying slice.
func (m *Memory) Bytes() []byte { return m.data }

// Len returns the fixed length of the stream.
func (m *Memory) Len() int64 { return int64(len(m.data)) }

func (m *Memory) Read(p []byte) (int, error) {
	if m.pos >= int64(len(m.data)) {
		return 0, io.EOF
	}

	n := copy(p, m.data[m.pos:])
	m.pos += int64(n)

	return n, nil
}

func (m *Memory) Write(p []byte) (int, error) {
	if m.pos+int64(len(p)) > int64(len(m.data)) {
		return 0, &errs.BoundsError{
			Op:     "write",
			Offset: m.pos,
			Want:   int64(len(p)),
			Length: int64(len(m.data)),
		}
	}

	n := copy(m.data[m.pos:], p)
	m.pos += int64(n)

	return n, nil
}

func (m *Memory) Seek(offset int64, whence int) (int64, error) {
	var target int64
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		target = m.pos + offset
	case io.SeekEnd:
		target = int64(len(m.data)) + offset
	default:
		return 0, &errs.StateError{Op: "seek", Detail: "invalid whence"}
	}

	if target < 0 || target > int64(len(m.data)) {
		return 0, &errs.BoundsError{
			Op:     "seek",
			Offset: m.pos,
			Want:   target,
			Length: int64(len(m.data)),
		}
	}

	m.pos = target

	return target, nil
}
