// Package pool provides pooled byte buffers for transient encode scratch:
// string encoding, padding, and compressed-block staging.
package pool

import "sync"

// DefaultSize is the initial capacity of a pooled buffer.
// MaxThreshold caps what is returned to the pool; oversized buffers are
// dropped so a single huge encode does not pin memory forever.
const (
	DefaultSize  = 4 * 1024
	MaxThreshold = 256 * 1024
)

// ByteBuffer is a reusable byte slice with amortized growth.
type ByteBuffer struct {
	B []byte
}

var bufferPool = sync.Pool{
	New: func() any {
		return &ByteBuffer{B: make([]byte, 0, DefaultSize)}
	},
}

// Get returns a reset buffer from the pool.
func Get() *ByteBuffer {
	return bufferPool.Get().(*ByteBuffer)
}

// Put resets and returns a buffer to the pool. Buffers that grew past
// MaxThreshold are discarded.
func Put(bb *ByteBuffer) {
	if bb == nil || cap(bb.B) > MaxThreshold {
		return
	}

	bb.Reset()
	bufferPool.Put(bb)
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte { return bb.B }

// Len returns the current length of the buffer.
func (bb *ByteBuffer) Len() int { return len(bb.B) }

// Reset empties the buffer, keeping its capacity.
func (bb *ByteBuffer) Reset() { bb.B = bb.B[:0] }

// Write appends data, growing as needed.
func (bb *ByteBuffer) Write(data []byte) {
	bb.B = append(bb.B, data...)
}

// WriteByte appends a single byte. It always returns nil, matching the
// io.ByteWriter signature.
func (bb *ByteBuffer) WriteByte(c byte) error {
	bb.B = append(bb.B, c)
	return nil
}

// Extend lengthens the buffer by n zero-initialized bytes and returns the
// newly exposed tail for the caller to fill.
func (bb *ByteBuffer) Extend(n int) []byte {
	start := len(bb.B)
	if cap(bb.B)-start < n {
		grown := make([]byte, start, growTarget(start, n))
		copy(grown, bb.B)
		bb.B = grown
	}
	bb.B = bb.B[:start+n]

	tail := bb.B[start:]
	clear(tail)

	return tail
}

// growTarget grows small buffers by DefaultSize and larger ones by 25%,
// always covering at least the requested bytes.
func growTarget(current, required int) int {
	growBy := DefaultSize
	if current > 4*DefaultSize {
		growBy = current / 4
	}
	if growBy < required {
		growBy = required
	}

	return current + growBy
}
