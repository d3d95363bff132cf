// Package binarymemory is a binary-data access toolkit for fixed binary file
// formats: a pair of cursors over a byte region or seekable stream with
// endianness-aware typed access, forward-reference reservations, nested
// position bookmarks, and composable stream transforms.
//
// # Core Features
//
//   - One generic code path for every fixed-width type: cursor.Read[uint32],
//     cursor.Write[float64], slices, peeks and asserts
//   - Reserve/Fill for header fields whose values are only known after the
//     body is written, with a ledger that refuses to finalize while slots
//     are unfilled
//   - StepIn/StepOut bookmarks for offset-addressed substructures
//   - Terminated, fixed-length and length-prefixed strings in UTF-8/16/32,
//     ASCII, Shift-JIS, EUC-JP, EUC-KR and GBK
//   - Sector-aligned and bounded sub-range stream transforms
//   - Zstd, S2 and LZ4 block codecs for compressed regions
//
// # Basic Usage
//
// Writing a header with a forward-referenced size field:
//
//	import (
//	    "github.com/WarpZephyr/BinaryMemory/cursor"
//	)
//
//	w, _ := binarymemory.NewWriter(buf, cursor.WithBigEndian())
//	w.WriteBytes([]byte("FMT\x00"))
//	cursor.Reserve[uint32](w, "bodySize")
//	bodyStart := w.Position()
//	// ... write the body ...
//	cursor.Fill[uint32](w, "bodySize", uint32(w.Position()-bodyStart))
//	out, err := w.Finish() // fails if any reservation is still open
//
// Reading an offset-addressed structure without losing your place:
//
//	r, _ := binarymemory.NewReader(data)
//	offset, _ := cursor.Read[uint32](r)
//	r.StepIn(int64(offset))
//	name, _ := r.ReadString()
//	r.StepOut()
//
// # Package Structure
//
// This package re-exports the common constructors. The full API lives in the
// cursor, stream, charset, compress and endian packages.
package binarymemory

import (
	"io"

	"github.com/WarpZephyr/BinaryMemory/cursor"
)

// Reader is a read cursor. See the cursor package for the full API.
type Reader = cursor.Reader

// Writer is a write cursor. See the cursor package for the full API.
type Writer = cursor.Writer

// NewReader creates a Reader over a byte slice in memory mode.
func NewReader(data []byte, opts ...cursor.Option) (*Reader, error) {
	return cursor.NewReader(data, opts...)
}

// NewReaderFromStream creates a Reader over a seekable stream.
func NewReaderFromStream(src io.ReadSeeker, opts ...cursor.Option) (*Reader, error) {
	return cursor.NewReaderFromStream(src, opts...)
}

// NewReaderFromFile opens path and creates a Reader that owns the file.
func NewReaderFromFile(path string, opts ...cursor.Option) (*Reader, error) {
	return cursor.NewReaderFromFile(path, opts...)
}

// NewWriter creates a Writer over a fixed-capacity byte slice.
func NewWriter(buf []byte, opts ...cursor.Option) (*Writer, error) {
	return cursor.NewWriter(buf, opts...)
}

// NewWriterFromStream creates a Writer over a seekable read-write stream.
func NewWriterFromStream(rw io.ReadWriteSeeker, opts ...cursor.Option) (*Writer, error) {
	return cursor.NewWriterFromStream(rw, opts...)
}

// NewWriterFromFile creates path and a Writer that owns the file.
func NewWriterFromFile(path string, opts ...cursor.Option) (*Writer, error) {
	return cursor.NewWriterFromFile(path, opts...)
}
