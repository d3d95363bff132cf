// Package cursor implements the reader and writer cursors at the heart of
// BinaryMemory: endianness-aware typed access over a fixed byte region or a
// seekable stream, forward-reference reservations, nested position
// bookmarks, string codecs, and range checksums.
//
// Typed access is provided by package-level generic functions (Read, Write,
// Get, Peek, ReadSlice, WriteSlice, Assert, Reserve, Fill) because Go methods
// cannot take type parameters; everything else lives as methods on Reader and
// Writer.
//
// A cursor is a mutable, unshared object. Concurrent use of one instance
// from multiple goroutines is not supported; use one cursor per goroutine or
// synchronize externally.
package cursor

import (
	"io"

	"github.com/WarpZephyr/BinaryMemory/charset"
	"github.com/WarpZephyr/BinaryMemory/endian"
	"github.com/WarpZephyr/BinaryMemory/errs"
	"github.com/cespare/xxhash/v2"
)

// cursor holds the state shared by Reader and Writer: one position, one
// byte-order engine, the variable-value widths, the bookmark stack, and the
// backing region. The invariant 0 <= position <= length holds at all times;
// operations that would break it fail and leave the position unchanged.
type cursor struct {
	region      region
	position    int64
	order       endian.EndianEngine
	varIntSize  int // width of variable integer values: 1, 2, 4 or 8
	varPrecSize int // width of variable precise values: 2, 4 or 8
	enc         charset.Encoding
	padByte     byte
	bookmarks   []int64
	closer      io.Closer // set when the cursor opened its own backing file
	scratch     [8]byte
}

func (c *cursor) init(r region) {
	c.region = r
	c.order = endian.Little()
	c.varIntSize = 4
	c.varPrecSize = 4
	c.enc = charset.UTF8
}

// Position returns the absolute byte offset of the next read or write.
func (c *cursor) Position() int64 { return c.position }

// SetPosition moves the cursor to the absolute offset pos.
func (c *cursor) SetPosition(pos int64) error {
	if pos < 0 || pos > c.region.length() {
		return &errs.BoundsError{Op: "set position", Offset: c.position, Want: pos, Length: c.region.length()}
	}

	c.position = pos

	return nil
}

// Length returns the current byte length of the backing region.
func (c *cursor) Length() int64 { return c.region.length() }

// Remaining returns the byte count between the position and the end.
func (c *cursor) Remaining() int64 { return c.region.length() - c.position }

// Advance moves the cursor forward by count bytes.
func (c *cursor) Advance(count int64) error {
	return c.SetPosition(c.position + count)
}

// Rewind moves the cursor backward by count bytes.
func (c *cursor) Rewind(count int64) error {
	return c.SetPosition(c.position - count)
}

// Align moves the cursor forward to the next multiple of alignment,
// staying put when already aligned.
func (c *cursor) Align(alignment int64) error {
	return c.AlignFrom(0, alignment)
}

// AlignFrom aligns the cursor relative to an arbitrary base offset: the
// cursor moves forward until position-base is a multiple of alignment.
func (c *cursor) AlignFrom(base, alignment int64) error {
	if alignment <= 0 {
		return &errs.StateError{Op: "align", Detail: "alignment must be positive"}
	}

	rem := (c.position - base) % alignment
	if rem == 0 {
		return nil
	}
	if rem < 0 {
		rem += alignment
	}

	return c.SetPosition(c.position + alignment - rem)
}

// StepIn saves the current position on the bookmark stack and jumps to pos.
// Bookmarks nest to any depth; each StepIn must be balanced by a StepOut.
func (c *cursor) StepIn(pos int64) error {
	saved := c.position
	if err := c.SetPosition(pos); err != nil {
		return err
	}

	c.bookmarks = append(c.bookmarks, saved)

	return nil
}

// StepOut pops the most recent bookmark and restores the position to it.
func (c *cursor) StepOut() error {
	if len(c.bookmarks) == 0 {
		return &errs.StateError{Op: "step out", Detail: "bookmark stack is empty"}
	}

	last := len(c.bookmarks) - 1
	c.position = c.bookmarks[last]
	c.bookmarks = c.bookmarks[:last]

	return nil
}

// StepDepth returns the number of open bookmarks. Balance at finalization is
// the caller's responsibility; it is not enforced.
func (c *cursor) StepDepth() int { return len(c.bookmarks) }

// Order returns the byte-order engine in effect.
func (c *cursor) Order() endian.EndianEngine { return c.order }

// SetOrder replaces the byte-order engine. It affects multi-byte numeric
// values only, never raw byte copies.
func (c *cursor) SetOrder(order endian.EndianEngine) { c.order = order }

// BigEndian reports whether the cursor decodes multi-byte values
// most-significant-byte first.
func (c *cursor) BigEndian() bool { return endian.IsBig(c.order) }

// SetBigEndian switches the byte order by flag.
func (c *cursor) SetBigEndian(big bool) { c.order = endian.Of(big) }

// VariableIntSize returns the width used by variable integer operations.
func (c *cursor) VariableIntSize() int { return c.varIntSize }

// SetVariableIntSize selects the width used by variable integer operations:
// 1, 2, 4 or 8 bytes.
func (c *cursor) SetVariableIntSize(size int) error {
	switch size {
	case 1, 2, 4, 8:
		c.varIntSize = size
		return nil
	default:
		return &errs.StateError{Op: "set variable int size", Detail: "width must be 1, 2, 4 or 8"}
	}
}

// VariablePreciseSize returns the width used by variable precise operations.
func (c *cursor) VariablePreciseSize() int { return c.varPrecSize }

// SetVariablePreciseSize selects the width used by variable precise
// operations: 2 (IEEE half), 4 or 8 bytes.
func (c *cursor) SetVariablePreciseSize(size int) error {
	switch size {
	case 2, 4, 8:
		c.varPrecSize = size
		return nil
	default:
		return &errs.StateError{Op: "set variable precise size", Detail: "width must be 2, 4 or 8"}
	}
}

// Charset returns the text encoding used by string operations without an
// explicit encoding argument.
func (c *cursor) Charset() charset.Encoding { return c.enc }

// SetCharset replaces the default text encoding.
func (c *cursor) SetCharset(enc charset.Encoding) { c.enc = enc }

// Checksum returns the xxHash64 digest of the byte range [off, off+count)
// without disturbing the cursor.
func (c *cursor) Checksum(off, count int64) (uint64, error) {
	if err := c.checkRange("checksum", off, count); err != nil {
		return 0, err
	}

	buf := make([]byte, count)
	if err := c.region.readAt(buf, off); err != nil {
		return 0, err
	}

	return xxhash.Sum64(buf), nil
}

// checkRead verifies that count bytes can be read at the current position.
func (c *cursor) checkRead(op string, count int64) error {
	return c.checkRange(op, c.position, count)
}

func (c *cursor) checkRange(op string, off, count int64) error {
	if count < 0 || off < 0 || off+count > c.region.length() {
		return &errs.BoundsError{Op: op, Offset: off, Want: count, Length: c.region.length()}
	}

	return nil
}

// checkWrite verifies that count bytes can be written at the current
// position. Growable stream backings may extend past the current end;
// fixed memory backings may not.
func (c *cursor) checkWrite(op string, count int64) error {
	if count < 0 {
		return &errs.BoundsError{Op: op, Offset: c.position, Want: count, Length: c.region.length()}
	}

	if c.region.growable() {
		return nil
	}

	return c.checkRange(op, c.position, count)
}

// readBytes fills b from the current position and advances over it.
func (c *cursor) readBytes(op string, b []byte) error {
	if err := c.checkRead(op, int64(len(b))); err != nil {
		return err
	}

	if err := c.region.readAt(b, c.position); err != nil {
		return err
	}

	c.position += int64(len(b))

	return nil
}

// writeBytes stores b at the current position and advances over it.
func (c *cursor) writeBytes(op string, b []byte) error {
	if err := c.checkWrite(op, int64(len(b))); err != nil {
		return err
	}

	if err := c.region.writeAt(b, c.position); err != nil {
		return err
	}

	c.position += int64(len(b))

	return nil
}

// withPosition runs fn at pos and restores the saved position afterwards,
// whether or not fn succeeds.
func withPosition[T any](c *cursor, pos int64, fn func() (T, error)) (T, error) {
	saved := c.position
	if err := c.SetPosition(pos); err != nil {
		var zero T
		return zero, err
	}

	v, err := fn()
	c.position = saved

	return v, err
}
