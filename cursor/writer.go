package cursor

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/WarpZephyr/BinaryMemory/errs"
	"github.com/WarpZephyr/BinaryMemory/internal/options"
)

// Writer is a write cursor over a fixed byte region or a seekable stream.
// Alongside the shared cursor state it carries the reservation ledger used
// by Reserve and Fill; the ledger must be empty by the time the Writer is
// finalized.
//
// The zero value is not usable; construct with NewWriter, NewWriterFromStream
// or NewWriterFromFile.
type Writer struct {
	cursor
	reservations map[reservationKey]int64
}

// NewWriter creates a Writer over buf in memory mode. The buffer's capacity
// is fixed: writes past the end fail rather than growing it.
func NewWriter(buf []byte, opts ...Option) (*Writer, error) {
	w := &Writer{reservations: make(map[reservationKey]int64)}
	w.init(&memoryRegion{data: buf})

	if err := options.Apply(&w.cursor, opts...); err != nil {
		return nil, err
	}

	return w, nil
}

// NewWriterFromStream creates a Writer over a seekable read-write stream.
// Writes at the end of the stream extend it. The Writer borrows the stream;
// closing it remains the caller's responsibility, but Finish must still be
// called to enforce the reservation ledger invariant.
func NewWriterFromStream(rw io.ReadWriteSeeker, opts ...Option) (*Writer, error) {
	reg, err := newStreamRegion(rw, rw)
	if err != nil {
		return nil, err
	}

	w := &Writer{reservations: make(map[reservationKey]int64)}
	w.init(reg)

	if err := options.Apply(&w.cursor, opts...); err != nil {
		return nil, err
	}

	return w, nil
}

// NewWriterFromFile creates path (truncating any existing file) and creates
// a Writer over it. The Writer owns the file; Close releases it on every
// path and reports outstanding reservations.
func NewWriterFromFile(path string, opts ...Option) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open writer: %w", err)
	}

	w, err := NewWriterFromStream(f, opts...)
	if err != nil {
		f.Close()
		return nil, err
	}

	w.closer = f

	return w, nil
}

// Finish verifies the reservation ledger is empty and, in memory mode,
// returns the backing buffer. A non-empty ledger is a fatal misuse and the
// returned IncompleteWriteError names every unresolved key.
func (w *Writer) Finish() ([]byte, error) {
	if err := w.checkLedger(); err != nil {
		return nil, err
	}

	if m, ok := w.region.(*memoryRegion); ok {
		return m.data, nil
	}

	return nil, nil
}

// Close finalizes the Writer. The backing file, when owned, is released on
// every path; an outstanding reservation still surfaces as an
// IncompleteWriteError even when closing the file succeeds.
func (w *Writer) Close() error {
	ledgerErr := w.checkLedger()

	if w.closer != nil {
		c := w.closer
		w.closer = nil
		if err := c.Close(); err != nil {
			return err
		}
	}

	return ledgerErr
}

func (w *Writer) checkLedger() error {
	if len(w.reservations) == 0 {
		return nil
	}

	keys := make([]string, 0, len(w.reservations))
	for key := range w.reservations {
		keys = append(keys, fmt.Sprintf("%s (%s)", key.name, key.tag))
	}
	sort.Strings(keys)

	return &errs.IncompleteWriteError{Keys: keys}
}

// WriteBytes writes raw bytes at the current position and advances over
// them. Raw bytes are never byte-order corrected.
func (w *Writer) WriteBytes(b []byte) error {
	return w.writeBytes("write bytes", b)
}

// WriteByte writes a single byte.
func (w *Writer) WriteByte(b byte) error {
	w.scratch[0] = b
	return w.writeBytes("write byte", w.scratch[:1])
}

// WriteBool writes a boolean as one byte: 1 for true, 0 for false.
func (w *Writer) WriteBool(v bool) error {
	var b byte
	if v {
		b = 1
	}

	return w.WriteByte(b)
}

// WritePattern writes count copies of value.
func (w *Writer) WritePattern(count int64, value byte) error {
	if count < 0 {
		return &errs.BoundsError{Op: "write pattern", Offset: w.position, Want: count, Length: w.Length()}
	}

	buf := make([]byte, count)
	if value != 0 {
		for i := range buf {
			buf[i] = value
		}
	}

	return w.writeBytes("write pattern", buf)
}

// Pad writes the configured pad byte until the position is a multiple of
// alignment, staying put when already aligned.
func (w *Writer) Pad(alignment int64) error {
	if alignment <= 0 {
		return &errs.StateError{Op: "pad", Detail: "alignment must be positive"}
	}

	rem := w.position % alignment
	if rem == 0 {
		return nil
	}

	return w.WritePattern(alignment-rem, w.padByte)
}
