package cursor

import (
	"github.com/WarpZephyr/BinaryMemory/charset"
	"github.com/WarpZephyr/BinaryMemory/endian"
	"github.com/WarpZephyr/BinaryMemory/internal/options"
)

// Option configures a Reader or Writer at construction. The defaults are
// little-endian byte order, UTF-8 strings, 4-byte variable values, and a
// zero pad byte.
type Option = options.Option[*cursor]

// WithBigEndian selects most-significant-byte-first decoding of multi-byte
// values.
func WithBigEndian() Option {
	return options.NoError(func(c *cursor) {
		c.order = endian.Big()
	})
}

// WithLittleEndian selects least-significant-byte-first decoding. This is
// the default.
func WithLittleEndian() Option {
	return options.NoError(func(c *cursor) {
		c.order = endian.Little()
	})
}

// WithOrder sets an explicit byte-order engine.
func WithOrder(order endian.EndianEngine) Option {
	return options.NoError(func(c *cursor) {
		c.order = order
	})
}

// WithVariableIntSize sets the width used by variable integer operations:
// 1, 2, 4 or 8 bytes.
func WithVariableIntSize(size int) Option {
	return options.New(func(c *cursor) error {
		return c.SetVariableIntSize(size)
	})
}

// WithVariablePreciseSize sets the width used by variable precise
// operations: 2, 4 or 8 bytes.
func WithVariablePreciseSize(size int) Option {
	return options.New(func(c *cursor) error {
		return c.SetVariablePreciseSize(size)
	})
}

// WithCharset sets the default text encoding for string operations.
func WithCharset(enc charset.Encoding) Option {
	return options.NoError(func(c *cursor) {
		c.enc = enc
	})
}

// WithPadByte sets the byte used to pad fixed-length string writes.
func WithPadByte(b byte) Option {
	return options.NoError(func(c *cursor) {
		c.padByte = b
	})
}
