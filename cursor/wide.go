package cursor

import "github.com/WarpZephyr/BinaryMemory/endian"

// Values wider than 64 bits have no native Go type, so they fall outside the
// generic Read/Write path: 128-bit integers travel as a high/low pair of
// 64-bit halves, and half-precision floats travel as their binary16 bit
// pattern widened to float32.

// Uint128 is a 128-bit unsigned integer as a high/low pair of 64-bit halves.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Int128 is a 128-bit signed integer. The sign lives in the high half; the
// low half is the unsigned low 64 bits of the two's-complement value.
type Int128 struct {
	Hi int64
	Lo uint64
}

// ReadUint128 reads a 16-byte unsigned integer. Under big-endian order the
// high half is stored first, under little-endian order the low half is. On
// failure the position is unchanged.
func (r *Reader) ReadUint128() (Uint128, error) {
	if err := r.checkRead("read uint128", 16); err != nil {
		return Uint128{}, err
	}

	first, err := Read[uint64](r)
	if err != nil {
		return Uint128{}, err
	}

	second, err := Read[uint64](r)
	if err != nil {
		r.position -= 8
		return Uint128{}, err
	}

	if endian.IsBig(r.order) {
		return Uint128{Hi: first, Lo: second}, nil
	}

	return Uint128{Hi: second, Lo: first}, nil
}

// ReadInt128 reads a 16-byte signed integer.
func (r *Reader) ReadInt128() (Int128, error) {
	v, err := r.ReadUint128()
	if err != nil {
		return Int128{}, err
	}

	return Int128{Hi: int64(v.Hi), Lo: v.Lo}, nil
}

// WriteUint128 writes a 16-byte unsigned integer, halves ordered by the
// cursor's byte order.
func (w *Writer) WriteUint128(v Uint128) error {
	first, second := v.Lo, v.Hi
	if endian.IsBig(w.order) {
		first, second = v.Hi, v.Lo
	}

	start := w.position
	if err := Write(w, first); err != nil {
		return err
	}

	if err := Write(w, second); err != nil {
		w.position = start
		return err
	}

	return nil
}

// WriteInt128 writes a 16-byte signed integer.
func (w *Writer) WriteInt128(v Int128) error {
	return w.WriteUint128(Uint128{Hi: uint64(v.Hi), Lo: v.Lo})
}

// ReadFloat16 reads a 2-byte IEEE 754 half-precision value widened to
// float32.
func (r *Reader) ReadFloat16() (float32, error) {
	bits, err := Read[uint16](r)
	if err != nil {
		return 0, err
	}

	return halfToFloat32(bits), nil
}

// WriteFloat16 writes value as a 2-byte IEEE 754 half-precision bit pattern.
// Out-of-range magnitudes become infinity; the precision loss is inherent to
// the width.
func (w *Writer) WriteFloat16(value float32) error {
	return Write(w, float32ToHalf(value))
}
