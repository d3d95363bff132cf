package cursor

import (
	"fmt"

	"github.com/WarpZephyr/BinaryMemory/compress"
)

// Many fixed binary formats embed compressed blocks whose decompressed
// contents are themselves a fixed layout. These helpers bridge a cursor and
// a compress.Codec so format code can step into such blocks without manual
// staging.

// NewReaderFromCompressed decompresses data with codec and returns a Reader
// over the decompressed bytes in memory mode.
func NewReaderFromCompressed(codec compress.Codec, data []byte, opts ...Option) (*Reader, error) {
	raw, err := codec.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("compressed reader: %w", err)
	}

	return NewReader(raw, opts...)
}

// ReadCompressed reads count bytes at the cursor and returns them
// decompressed with codec.
func (r *Reader) ReadCompressed(codec compress.Codec, count int64) ([]byte, error) {
	data, err := r.ReadBytes(count)
	if err != nil {
		return nil, err
	}

	raw, err := codec.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("read compressed: %w", err)
	}

	return raw, nil
}

// WriteCompressed compresses raw with codec, writes the compressed bytes at
// the cursor, and returns the written byte count, which a caller typically
// records through a reservation in an enclosing header.
func (w *Writer) WriteCompressed(codec compress.Codec, raw []byte) (int64, error) {
	data, err := codec.Compress(raw)
	if err != nil {
		return 0, fmt.Errorf("write compressed: %w", err)
	}

	if err := w.WriteBytes(data); err != nil {
		return 0, err
	}

	return int64(len(data)), nil
}
