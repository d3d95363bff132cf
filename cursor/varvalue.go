package cursor

import (
	"math"

	"github.com/WarpZephyr/BinaryMemory/errs"
)

// Variable values are logical numeric fields whose on-disk width is a
// per-format setting rather than part of the field's type: the same parser
// code reads a "size" field as 2 bytes in one format revision and 4 in
// another by changing the cursor's variable width.

// ReadVariableInt reads a signed integer of the cursor's variable int width
// (1, 2, 4 or 8 bytes), sign-extended to int64.
func (r *Reader) ReadVariableInt() (int64, error) {
	switch r.varIntSize {
	case 1:
		v, err := Read[int8](r)
		return int64(v), err
	case 2:
		v, err := Read[int16](r)
		return int64(v), err
	case 4:
		v, err := Read[int32](r)
		return int64(v), err
	case 8:
		return Read[int64](r)
	default:
		return 0, &errs.StateError{Op: "read variable int", Detail: "unsupported width"}
	}
}

// ReadVariableUint reads an unsigned integer of the cursor's variable int
// width, zero-extended to uint64.
func (r *Reader) ReadVariableUint() (uint64, error) {
	switch r.varIntSize {
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
		return 0, &errs.StateError{Op: "read variable uint", Detail: "unsupported width"}
	}
}

// ReadVariablePrecise reads a floating-point value of the cursor's variable
// precise width (2, 4 or 8 bytes), widened to float64. Two-byte values are
// IEEE 754 half precision, decoded component-wise.
func (r *Reader) ReadVariablePrecise() (float64, error) {
	switch r.varPrecSize {
	case 2:
		bits, err := Read[uint16](r)
		if err != nil {
			return 0, err
		}
		return float64(halfToFloat32(bits)), nil
	case 4:
		v, err := Read[float32](r)
		return float64(v), err
	case 8:
		return Read[float64](r)
	default:
		return 0, &errs.StateError{Op: "read variable precise", Detail: "unsupported width"}
	}
}

// WriteVariableInt writes a signed integer at the cursor's variable int
// width. A value outside the width's range fails with a DataIntegrityError
// instead of being silently truncated.
func (w *Writer) WriteVariableInt(value int64) error {
	switch w.varIntSize {
	case 1:
		if value < math.MinInt8 || value > math.MaxInt8 {
			return w.variableRangeError(value)
		}
		return Write(w, int8(value))
	case 2:
		if value < math.MinInt16 || value > math.MaxInt16 {
			return w.variableRangeError(value)
		}
		return Write(w, int16(value))
	case 4:
		if value < math.MinInt32 || value > math.MaxInt32 {
			return w.variableRangeError(value)
		}
		return Write(w, int32(value))
	case 8:
		return Write(w, value)
	default:
		return &errs.StateError{Op: "write variable int", Detail: "unsupported width"}
	}
}

// WriteVariableUint writes an unsigned integer at the cursor's variable int
// width, rejecting values outside the width's range.
func (w *Writer) WriteVariableUint(value uint64) error {
	switch w.varIntSize {
	case 1:
		if value > math.MaxUint8 {
			return w.variableRangeError(value)
		}
		return Write(w, uint8(value))
	case 2:
		if value > math.MaxUint16 {
			return w.variableRangeError(value)
		}
		return Write(w, uint16(value))
	case 4:
		if value > math.MaxUint32 {
			return w.variableRangeError(value)
		}
		return Write(w, uint32(value))
	case 8:
		return Write(w, value)
	default:
		return &errs.StateError{Op: "write variable uint", Detail: "unsupported width"}
	}
}

// WriteVariablePrecise writes a floating-point value at the cursor's
// variable precise width. Narrowing to 4 or 2 bytes rounds in the usual
// floating-point sense; that precision loss is inherent to the width, not a
// truncation error.
func (w *Writer) WriteVariablePrecise(value float64) error {
	switch w.varPrecSize {
	case 2:
		return Write(w, float32ToHalf(float32(value)))
	case 4:
		return Write(w, float32(value))
	case 8:
		return Write(w, value)
	default:
		return &errs.StateError{Op: "write variable precise", Detail: "unsupported width"}
	}
}

func (w *Writer) variableRangeError(value any) error {
	return &errs.DataIntegrityError{Offset: w.position, Actual: value}
}

// halfToFloat32 decodes an IEEE 754 binary16 bit pattern.
func halfToFloat32(h uint16) float32 {
	sign := uint32(h&0x8000) << 16
	exp := uint32(h & 0x7C00)
	mant := uint32(h & 0x03FF)

	switch {
	case exp == 0x7C00: // infinity or NaN
		return math.Float32frombits(sign | 0x7F800000 | mant<<13)
	case exp != 0: // normal
		return math.Float32frombits(sign | (exp>>10+112)<<23 | mant<<13)
	case mant != 0: // subnormal
		f := float32(mant) / (1 << 24)
		if sign != 0 {
			return -f
		}
		return f
	default: // signed zero
		return math.Float32frombits(sign)
	}
}

// float32ToHalf encodes an IEEE 754 binary16 bit pattern. Out-of-range
// magnitudes become infinity, tiny magnitudes flush to zero.
func float32ToHalf(f float32) uint16 {
	bits := math.Float32bits(f)
	sign := uint16(bits>>16) & 0x8000
	mant := bits & 0x7FFFFF
	exp := int32(bits>>23&0xFF) - 127 + 15

	switch {
	case bits&0x7FFFFFFF == 0:
		return sign
	case bits&0x7F800000 == 0x7F800000:
		if mant != 0 {
			return sign | 0x7E00
		}
		return sign | 0x7C00
	case exp >= 31:
		return sign | 0x7C00
	case exp <= 0:
		if exp < -10 {
			return sign
		}
		mant |= 0x800000
		return sign | uint16(mant>>uint32(14-exp))
	default:
		return sign | uint16(exp)<<10 | uint16(mant>>13)
	}
}
