// Package fixed implements the single generic code path for fixed-width
// scalar transport.
//
// Every typed cursor operation funnels through Decode/Encode here: a value is
// moved between memory and its wire form as the same-width unsigned integer
// bit pattern via an endian.EndianEngine, then bit-reinterpreted to the
// requested Go type. Floating-point values therefore travel as uint32/uint64
// bit patterns and are never formatted as text. One-byte values are
// endianness-invariant.
package fixed

import (
	"unsafe"

	"github.com/WarpZephyr/BinaryMemory/endian"
)

// Scalar is the set of fixed-width primitive types a cursor can transport.
// Booleans are excluded: their strict {0, 1} byte validation lives at the
// cursor layer, not in the transport.
type Scalar interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 |
		~int64 | ~uint64 | ~float32 | ~float64
}

// SizeOf returns the encoded byte width of T: 1, 2, 4 or 8.
func SizeOf[T Scalar]() int {
	var v T
	return int(unsafe.Sizeof(v))
}

// Decode reads one T from the front of b using the given byte order.
// b must hold at least SizeOf[T]() bytes; the cursor layer guarantees that.
//
// The unsafe pointer casts below reinterpret between T and the unsigned
// integer of identical width; each case is only reachable when the sizes
// match, which the switch on unsafe.Sizeof enforces.
func Decode[T Scalar](b []byte, order endian.EndianEngine) T {
	var v T
	switch unsafe.Sizeof(v) {
	case 1:
		*(*uint8)(unsafe.Pointer(&v)) = b[0]
	case 2:
		u := order.Uint16(b)
		v = *(*T)(unsafe.Pointer(&u))
	case 4:
		u := order.Uint32(b)
		v = *(*T)(unsafe.Pointer(&u))
	case 8:
		u := order.Uint64(b)
		v = *(*T)(unsafe.Pointer(&u))
	}

	return v
}

// Encode writes one T to the front of b using the given byte order.
// b must hold at least SizeOf[T]() bytes.
func Encode[T Scalar](b []byte, v T, order endian.EndianEngine) {
	switch unsafe.Sizeof(v) {
	case 1:
		b[0] = *(*uint8)(unsafe.Pointer(&v))
	case 2:
		order.PutUint16(b, *(*uint16)(unsafe.Pointer(&v)))
	case 4:
		order.PutUint32(b, *(*uint32)(unsafe.Pointer(&v)))
	case 8:
		order.PutUint64(b, *(*uint64)(unsafe.Pointer(&v)))
	}
}

// DecodeSlice decodes len(dst) consecutive values of T from b.
// The byte-order engine is resolved once for the whole call; the element loop
// performs no per-element endianness branching.
func DecodeSlice[T Scalar](b []byte, dst []T, order endian.EndianEngine) {
	size := SizeOf[T]()
	for i := range dst {
		dst[i] = Decode[T](b[i*size:], order)
	}
}

// EncodeSlice encodes all values of src into b, len(src)*SizeOf[T]() bytes.
func EncodeSlice[T Scalar](b []byte, src []T, order endian.EndianEngine) {
	size := SizeOf[T]()
	for i, v := range src {
		Encode(b[i*size:], v, order)
	}
}
