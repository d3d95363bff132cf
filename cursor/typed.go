package cursor

import (
	"github.com/WarpZephyr/BinaryMemory/errs"
	"github.com/WarpZephyr/BinaryMemory/internal/fixed"
)

// Read decodes one fixed-width value of type T at the cursor and advances
// over it. Multi-byte values are byte-order corrected by the cursor's
// engine; on failure the position is unchanged.
func Read[T fixed.Scalar](r *Reader) (T, error) {
	var zero T

	size := fixed.SizeOf[T]()
	if err := r.checkRead("read", int64(size)); err != nil {
		return zero, err
	}

	b := r.scratch[:size]
	if err := r.region.readAt(b, r.position); err != nil {
		return zero, err
	}

	r.position += int64(size)

	return fixed.Decode[T](b, r.order), nil
}

// Get decodes one value of type T at the absolute offset pos without moving
// the cursor.
func Get[T fixed.Scalar](r *Reader, pos int64) (T, error) {
	return withPosition(&r.cursor, pos, func() (T, error) {
		return Read[T](r)
	})
}

// Peek decodes one value of type T at the current position without moving
// the cursor.
func Peek[T fixed.Scalar](r *Reader) (T, error) {
	return Get[T](r, r.position)
}

// ReadSlice decodes count consecutive values of type T. The byte-order
// engine is resolved once for the whole call, not per element.
func ReadSlice[T fixed.Scalar](r *Reader, count int) ([]T, error) {
	// Bounds before allocation; the division also rules out count*size
	// overflow for absurd counts.
	size := fixed.SizeOf[T]()
	if count < 0 || int64(count) > r.Remaining()/int64(size) {
		return nil, &errs.BoundsError{Op: "read slice", Offset: r.position, Want: int64(count), Length: r.Length()}
	}

	buf := make([]byte, count*size)
	if err := r.readBytes("read slice", buf); err != nil {
		return nil, err
	}

	values := make([]T, count)
	fixed.DecodeSlice(buf, values, r.order)

	return values, nil
}

// Assert decodes one value of type T and fails with a DataIntegrityError
// unless it equals one of the expected values. The error carries the actual
// value, the expected set, and the offset of the value. The cursor remains
// advanced past the value so diagnostics can continue reading.
func Assert[T fixed.Scalar](r *Reader, expected ...T) (T, error) {
	var zero T

	if len(expected) == 0 {
		return zero, &errs.StateError{Op: "assert", Detail: "no expected values given"}
	}

	start := r.position

	actual, err := Read[T](r)
	if err != nil {
		return zero, err
	}

	for _, want := range expected {
		if actual == want {
			return actual, nil
		}
	}

	wants := make([]any, len(expected))
	for i, want := range expected {
		wants[i] = want
	}

	return actual, &errs.DataIntegrityError{Offset: start, Actual: actual, Expected: wants}
}

// Write encodes one fixed-width value of type T at the cursor and advances
// over it. On failure the position is unchanged.
func Write[T fixed.Scalar](w *Writer, value T) error {
	size := fixed.SizeOf[T]()
	if err := w.checkWrite("write", int64(size)); err != nil {
		return err
	}

	b := w.scratch[:size]
	fixed.Encode(b, value, w.order)

	if err := w.region.writeAt(b, w.position); err != nil {
		return err
	}

	w.position += int64(size)

	return nil
}

// Put encodes one value of type T at the absolute offset pos without moving
// the cursor.
func Put[T fixed.Scalar](w *Writer, pos int64, value T) error {
	_, err := withPosition(&w.cursor, pos, func() (struct{}, error) {
		return struct{}{}, Write(w, value)
	})

	return err
}

// WriteSlice encodes all values in order. The byte-order engine is resolved
// once for the whole call, not per element.
func WriteSlice[T fixed.Scalar](w *Writer, values []T) error {
	size := fixed.SizeOf[T]()
	buf := make([]byte, len(values)*size)
	fixed.EncodeSlice(buf, values, w.order)

	return w.writeBytes("write slice", buf)
}
