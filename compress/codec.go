// Package compress provides the block codecs used by the cursor
// compressed-region helpers.
//
// A Codec converts whole byte blocks; there is no streaming surface because
// format files embed compressed blocks of known extent. Zstd, S2 and LZ4 are
// provided alongside a no-op codec for formats whose "compressed" flag can
// be off.
package compress

import "fmt"

// Compressor compresses a block of bytes.
//
// The returned slice is newly allocated and owned by the caller; the input
// is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a block of bytes previously produced by the
// matching Compressor. Corrupted or mismatched input is an error.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// Type identifies a codec in format metadata.
type Type uint8

const (
	TypeNone Type = iota
	TypeZstd
	TypeS2
	TypeLZ4
)

// New returns the codec for t.
func New(t Type) (Codec, error) {
	switch t {
	case TypeNone:
		return NewNoopCodec(), nil
	case TypeZstd:
		return NewZstdCodec(), nil
	case TypeS2:
		return NewS2Codec(), nil
	case TypeLZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("unknown compression type %d", t)
	}
}
