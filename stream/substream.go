package stream

import (
	"fmt"
	"io"

	"github.com/WarpZephyr/BinaryMemory/errs"
)

// SubStream restricts all operations on a wrapped stream to the window
// [offset, offset+length), remapping positions so the window start is
// position zero.
//
// Reads are clamped at the window end and short-read; writes that would
// cross the window end fail outright, because silently truncating a write
// would corrupt output the caller believes was fully persisted.
type SubStream struct {
	base   io.Reader
	seeker io.Seeker // nil when the source is sequential-only
	writer io.Writer // nil when the source is read-only
	offset int64
	length int64
	seqPos int64 // window-relative position, tracked only for sequential sources
}

var _ io.ReadWriteSeeker = (*SubStream)(nil)

// NewSubStream creates a window [offset, offset+length) over a seekable
// stream and positions it at the window start. Construction fails when the
// offset is negative, at or past the end of base, or when the window would
// extend past the end of base.
func NewSubStream(base Stream, offset, length int64) (*SubStream, error) {
	baseLen, err := Length(base)
	if err != nil {
		return nil, fmt.Errorf("sub-stream: %w", err)
	}

	if err := validateWindow(offset, length, baseLen); err != nil {
		return nil, err
	}

	if _, err := base.Seek(offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("sub-stream: %w", err)
	}

	return &SubStream{
		base:   base,
		seeker: base,
		writer: base,
		offset: offset,
		length: length,
	}, nil
}

// NewSubStreamReader creates a read-only window over a source that may not
// support random seeking. Seekable sources are positioned directly; for
// sequential sources the leading offset bytes are skipped by chunked
// read-and-discard. The returned stream rejects writes, and rejects seeks
// when the source is sequential.
func NewSubStreamReader(r io.Reader, offset, length int64) (*SubStream, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		baseLen, err := Length(rs)
		if err != nil {
			return nil, fmt.Errorf("sub-stream: %w", err)
		}

		if err := validateWindow(offset, length, baseLen); err != nil {
			return nil, err
		}

		if _, err := rs.Seek(offset, io.SeekStart); err != nil {
			return nil, fmt.Errorf("sub-stream: %w", err)
		}

		return &SubStream{
			base:   rs,
			seeker: rs,
			offset: offset,
			length: length,
		}, nil
	}

	if offset < 0 {
		return nil, &errs.BoundsError{Op: "sub-stream", Want: offset}
	}

	if _, err := io.CopyN(io.Discard, r, offset); err != nil {
		return nil, fmt.Errorf("sub-stream: skipping %d bytes: %w", offset, err)
	}

	return &SubStream{
		base:   r,
		offset: offset,
		length: length,
	}, nil
}

// Len returns the window length in bytes.
func (s *SubStream) Len() int64 { return s.length }

// Origin returns the window's start offset in the wrapped stream's
// coordinates.
func (s *SubStream) Origin() int64 { return s.offset }

// Position returns the current window-relative position: the wrapped
// stream's position minus the window origin.
func (s *SubStream) Position() (int64, error) {
	if s.seeker == nil {
		return s.seqPos, nil
	}

	basePos, err := s.seeker.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}

	return basePos - s.offset, nil
}

// SetOrigin re-anchors the window to start at origin in the wrapped stream's
// coordinates, keeping the window length, and positions the stream at the new
// window start. The source must be seekable.
func (s *SubStream) SetOrigin(origin int64) error {
	if s.seeker == nil {
		return &errs.StateError{Op: "set origin", Detail: "source does not support seeking"}
	}

	baseLen, err := Length(s.seeker)
	if err != nil {
		return err
	}

	if err := validateWindow(origin, s.length, baseLen); err != nil {
		return err
	}

	s.offset = origin
	_, err = s.seeker.Seek(origin, io.SeekStart)

	return err
}

// Read reads up to len(p) bytes, clamped so the read never crosses the window
// end. A read with fewer bytes remaining than requested returns just the
// remaining bytes; a read at the window end returns io.EOF.
func (s *SubStream) Read(p []byte) (int, error) {
	pos, err := s.Position()
	if err != nil {
		return 0, err
	}

	remaining := s.length - pos
	if remaining <= 0 {
		return 0, io.EOF
	}

	if int64(len(p)) > remaining {
		p = p[:remaining]
	}

	n, err := s.base.Read(p)
	if s.seeker == nil {
		s.seqPos += int64(n)
	}

	return n, err
}

// Write writes len(p) bytes at the current position. A write that would
// cross the window end fails with a BoundsError and writes nothing.
func (s *SubStream) Write(p []byte) (int, error) {
	if s.writer == nil {
		return 0, &errs.StateError{Op: "write", Detail: "sub-stream source is read-only"}
	}

	pos, err := s.Position()
	if err != nil {
		return 0, err
	}

	if pos+int64(len(p)) > s.length {
		return 0, &errs.BoundsError{
			Op:     "write",
			Offset: pos,
			Want:   int64(len(p)),
			Length: s.length,
		}
	}

	return s.writer.Write(p)
}

// Seek repositions within the window. Offsets are window-relative for
// io.SeekStart and io.SeekEnd; the resulting position must stay inside
// [0, Len()]. Returns the new window-relative position.
func (s *SubStream) Seek(offset int64, whence int) (int64, error) {
	if s.seeker == nil {
		return 0, &errs.StateError{Op: "seek", Detail: "source does not support seeking"}
	}

	pos, err := s.Position()
	if err != nil {
		return 0, err
	}

	var target int64
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		target = pos + offset
	case io.SeekEnd:
		target = s.length + offset
	default:
		return 0, &errs.StateError{Op: "seek", Detail: "invalid whence"}
	}

	if target < 0 || target > s.length {
		return 0, &errs.BoundsError{
			Op:     "seek",
			Offset: pos,
			Want:   target,
			Length: s.length,
		}
	}

	if _, err := s.seeker.Seek(s.offset+target, io.SeekStart); err != nil {
		return 0, err
	}

	return target, nil
}

func validateWindow(offset, length, baseLen int64) error {
	if offset < 0 || offset >= baseLen || offset+length > baseLen || length < 0 {
		return &errs.BoundsError{
			Op:     "sub-stream window",
			Offset: offset,
			Want:   length,
			Length: baseLen,
		}
	}

	return nil
}
