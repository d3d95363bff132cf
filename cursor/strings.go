package cursor

import (
	"math"

	"github.com/WarpZephyr/BinaryMemory/charset"
	"github.com/WarpZephyr/BinaryMemory/errs"
	"github.com/WarpZephyr/BinaryMemory/internal/pool"
)

// String operations come in three forms, matching the three ways fixed
// binary formats delimit text:
//
//   - terminated: code units up to an all-zero unit, which is consumed but
//     excluded from the text
//   - fixed-length: an exact number of code units (reads) or bytes (writes)
//   - length-prefixed: an unsigned byte count followed by the encoded bytes
//
// The plain methods use the cursor's default encoding; the *In variants take
// an explicit one.

// ReadString reads a terminated string in the cursor's default encoding.
func (r *Reader) ReadString() (string, error) {
	return r.ReadStringIn(r.enc)
}

// ReadStringIn reads code units until an all-zero unit and decodes them with
// enc. The terminator is consumed but not part of the result. On failure the
// cursor is left where it started.
func (r *Reader) ReadStringIn(enc charset.Encoding) (string, error) {
	start := r.position
	unit := make([]byte, enc.Unit())

	bb := pool.Get()
	defer pool.Put(bb)

	for {
		if err := r.readBytes("read string", unit); err != nil {
			r.position = start
			return "", err
		}

		if allZero(unit) {
			break
		}

		bb.Write(unit)
	}

	text, err := enc.Decode(bb.Bytes())
	if err != nil {
		r.position = start
		return "", err
	}

	return text, nil
}

// ReadStringFixed reads units code units in the cursor's default encoding.
func (r *Reader) ReadStringFixed(units int) (string, error) {
	return r.ReadStringFixedIn(r.enc, units)
}

// ReadStringFixedIn consumes exactly units code units and decodes the prefix
// before the first embedded all-zero unit; anything after that terminator is
// discarded without error.
func (r *Reader) ReadStringFixedIn(enc charset.Encoding, units int) (string, error) {
	if units < 0 {
		return "", &errs.BoundsError{Op: "read string", Offset: r.position, Want: int64(units), Length: r.Length()}
	}

	start := r.position
	width := enc.Unit()
	buf := make([]byte, units*width)
	if err := r.readBytes("read string", buf); err != nil {
		return "", err
	}

	end := len(buf)
	for i := 0; i+width <= len(buf); i += width {
		if allZero(buf[i : i+width]) {
			end = i
			break
		}
	}

	text, err := enc.Decode(buf[:end])
	if err != nil {
		r.position = start
		return "", err
	}

	return text, nil
}

// ReadStringPrefixed reads a string whose encoded byte length is stored as
// an unsigned integer of prefixWidth bytes (1, 2, 4 or 8) before the data,
// using the cursor's default encoding.
func (r *Reader) ReadStringPrefixed(prefixWidth int) (string, error) {
	return r.ReadStringPrefixedIn(r.enc, prefixWidth)
}

// ReadStringPrefixedIn reads a length-prefixed string with an explicit
// encoding. The prefix is byte-order corrected like any other integer.
func (r *Reader) ReadStringPrefixedIn(enc charset.Encoding, prefixWidth int) (string, error) {
	start := r.position

	length, err := r.readPrefix(prefixWidth)
	if err != nil {
		return "", err
	}

	// The prefix is untrusted input; validate it against the remaining bytes
	// before allocating so a corrupt length fails instead of panicking.
	if length > uint64(r.Remaining()) {
		want := int64(math.MaxInt64)
		if length <= math.MaxInt64 {
			want = int64(length)
		}
		r.position = start
		return "", &errs.BoundsError{Op: "read string", Offset: start, Want: want, Length: r.Length()}
	}

	buf := make([]byte, length)
	if err := r.readBytes("read string", buf); err != nil {
		r.position = start
		return "", err
	}

	text, err := enc.Decode(buf)
	if err != nil {
		r.position = start
		return "", err
	}

	return text, nil
}

// GetString reads a terminated string at the absolute offset pos without
// moving the cursor.
func (r *Reader) GetString(pos int64) (string, error) {
	return withPosition(&r.cursor, pos, func() (string, error) {
		return r.ReadString()
	})
}

// PeekString reads a terminated string at the current position without
// moving the cursor.
func (r *Reader) PeekString() (string, error) {
	return r.GetString(r.position)
}

// AssertString reads a terminated string and fails with a
// DataIntegrityError unless it equals expected.
func (r *Reader) AssertString(expected string) error {
	start := r.position

	actual, err := r.ReadString()
	if err != nil {
		return err
	}

	if actual != expected {
		return &errs.DataIntegrityError{Offset: start, Actual: actual, Expected: []any{expected}}
	}

	return nil
}

func (r *Reader) readPrefix(width int) (uint64, error) {
	switch width {
	case 1:
		v, err := Read[uint8](r)
		return uint64(v), err
	case 2:
		v, err := Read[uint16](r)
		return uint64(v), err
	case 4:
		v, err := Read[uint32](r)
		return uint64(v), err
	case 8:
		return Read[uint64](r)
	default:
		return 0, &errs.StateError{Op: "read string", Detail: "prefix width must be 1, 2, 4 or 8"}
	}
}

// WriteString writes text in the cursor's default encoding followed by one
// all-zero code unit.
func (w *Writer) WriteString(text string) error {
	return w.WriteStringIn(w.enc, text)
}

// WriteStringIn writes a terminated string with an explicit encoding.
func (w *Writer) WriteStringIn(enc charset.Encoding, text string) error {
	encoded, err := enc.Encode(text)
	if err != nil {
		return err
	}

	bb := pool.Get()
	defer pool.Put(bb)

	bb.Write(encoded)
	bb.Extend(enc.Unit())

	return w.writeBytes("write string", bb.Bytes())
}

// WriteStringFixed writes text padded or truncated to exactly byteLen bytes
// in the cursor's default encoding.
func (w *Writer) WriteStringFixed(text string, byteLen int) error {
	return w.WriteStringFixedIn(w.enc, text, byteLen)
}

// WriteStringFixedIn encodes text, then pads with the cursor's pad byte or
// truncates to exactly byteLen bytes. Truncation silently drops excess
// encoded bytes; fixed-length string fields are a deliberately lossy
// contract.
func (w *Writer) WriteStringFixedIn(enc charset.Encoding, text string, byteLen int) error {
	if byteLen < 0 {
		return &errs.BoundsError{Op: "write string", Offset: w.position, Want: int64(byteLen), Length: w.Length()}
	}

	encoded, err := enc.Encode(text)
	if err != nil {
		return err
	}

	if len(encoded) > byteLen {
		encoded = encoded[:byteLen]
	}

	bb := pool.Get()
	defer pool.Put(bb)

	bb.Write(encoded)
	if pad := byteLen - len(encoded); pad > 0 {
		tail := bb.Extend(pad)
		if w.padByte != 0 {
			for i := range tail {
				tail[i] = w.padByte
			}
		}
	}

	return w.writeBytes("write string", bb.Bytes())
}

// WriteStringPrefixed writes text with its encoded byte length stored as an
// unsigned integer of prefixWidth bytes, in the cursor's default encoding.
func (w *Writer) WriteStringPrefixed(text string, prefixWidth int) error {
	return w.WriteStringPrefixedIn(w.enc, text, prefixWidth)
}

// WriteStringPrefixedIn writes a length-prefixed string with an explicit
// encoding. Encoded text longer than the prefix width can represent fails
// with a DataIntegrityError.
func (w *Writer) WriteStringPrefixedIn(enc charset.Encoding, text string, prefixWidth int) error {
	encoded, err := enc.Encode(text)
	if err != nil {
		return err
	}

	length := uint64(len(encoded))
	start := w.position

	switch prefixWidth {
	case 1:
		if length > math.MaxUint8 {
			return &errs.DataIntegrityError{Offset: start, Actual: length}
		}
		err = Write(w, uint8(length))
	case 2:
		if length > math.MaxUint16 {
			return &errs.DataIntegrityError{Offset: start, Actual: length}
		}
		err = Write(w, uint16(length))
	case 4:
		if length > math.MaxUint32 {
			return &errs.DataIntegrityError{Offset: start, Actual: length}
		}
		err = Write(w, uint32(length))
	case 8:
		err = Write(w, length)
	default:
		return &errs.StateError{Op: "write string", Detail: "prefix width must be 1, 2, 4 or 8"}
	}
	if err != nil {
		return err
	}

	if err := w.writeBytes("write string", encoded); err != nil {
		w.position = start
		return err
	}

	return nil
}

func allZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}

	return true
}
