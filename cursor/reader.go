package cursor

import (
	"fmt"
	"io"
	"os"

	"github.com/WarpZephyr/BinaryMemory/errs"
	"github.com/WarpZephyr/BinaryMemory/internal/options"
)

// Reader is a read cursor over a fixed byte region or a seekable stream.
//
// The zero value is not usable; construct with NewReader, NewReaderFromStream
// or NewReaderFromFile.
type Reader struct {
	cursor
}

// NewReader creates a Reader over data in memory mode. The Reader borrows
// data and never copies it.
func NewReader(data []byte, opts ...Option) (*Reader, error) {
	r := &Reader{}
	r.init(&memoryRegion{data: data})

	if err := options.Apply(&r.cursor, opts...); err != nil {
		return nil, err
	}

	return r, nil
}

// NewReaderFromStream creates a Reader over a seekable stream. The Reader
// borrows the stream; closing it remains the caller's responsibility.
func NewReaderFromStream(src io.ReadSeeker, opts ...Option) (*Reader, error) {
	reg, err := newStreamRegion(src, nil)
	if err != nil {
		return nil, err
	}

	r := &Reader{}
	r.init(reg)

	if err := options.Apply(&r.cursor, opts...); err != nil {
		return nil, err
	}

	return r, nil
}

// NewReaderFromFile opens path and creates a Reader over it. The Reader owns
// the file; Close releases it.
func NewReaderFromFile(path string, opts ...Option) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open reader: %w", err)
	}

	r, err := NewReaderFromStream(f, opts...)
	if err != nil {
		f.Close()
		return nil, err
	}

	r.closer = f

	return r, nil
}

// Close releases the backing file when the Reader owns one. Readers over
// borrowed buffers or streams close nothing.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}

	c := r.closer
	r.closer = nil

	return c.Close()
}

// ReadBytes reads count raw bytes and advances over them. Raw bytes are
// never byte-order corrected.
func (r *Reader) ReadBytes(count int64) ([]byte, error) {
	// Bounds before allocation, so an absurd count fails instead of panicking.
	if err := r.checkRead("read bytes", count); err != nil {
		return nil, err
	}

	buf := make([]byte, count)
	if err := r.readBytes("read bytes", buf); err != nil {
		return nil, err
	}

	return buf, nil
}

// GetBytes reads count raw bytes at the absolute offset pos without moving
// the cursor.
func (r *Reader) GetBytes(pos, count int64) ([]byte, error) {
	return withPosition(&r.cursor, pos, func() ([]byte, error) {
		return r.ReadBytes(count)
	})
}

// PeekBytes reads count raw bytes at the current position without moving the
// cursor.
func (r *Reader) PeekBytes(count int64) ([]byte, error) {
	return r.GetBytes(r.position, count)
}

// ReadByte reads a single byte.
func (r *Reader) ReadByte() (byte, error) {
	if err := r.checkRead("read byte", 1); err != nil {
		return 0, err
	}

	b := r.scratch[:1]
	if err := r.region.readAt(b, r.position); err != nil {
		return 0, err
	}

	r.position++

	return b[0], nil
}

// ReadBool reads one byte as a boolean. Decoding is strict: 0 is false, 1 is
// true, and any other byte fails with a DataIntegrityError, leaving the
// cursor where it was.
func (r *Reader) ReadBool() (bool, error) {
	start := r.position

	b, err := r.ReadByte()
	if err != nil {
		return false, err
	}

	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		r.position = start
		return false, &errs.DataIntegrityError{Offset: start, Actual: b, Expected: []any{byte(0), byte(1)}}
	}
}

// AssertBytes reads len(expected) raw bytes and fails with a
// DataIntegrityError unless they match expected exactly. Used for magic
// numbers and fixed signatures.
func (r *Reader) AssertBytes(expected []byte) error {
	start := r.position

	actual, err := r.ReadBytes(int64(len(expected)))
	if err != nil {
		return err
	}

	for i := range expected {
		if actual[i] != expected[i] {
			return &errs.DataIntegrityError{Offset: start, Actual: actual, Expected: []any{expected}}
		}
	}

	return nil
}
