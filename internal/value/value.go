package value

import (
	"math"
)

// Value is a tagged scalar: the kind field is the tag, bits is the
// payload — zero-extended for unsigned integers, the IEEE-754 bit
// pattern for floats. One struct, one switch on Kind, exhaustive by
// construction, in place of a closed enum or a Go interface per type.
type Value struct {
	kind DataType
	bits uint64
}

// Kind returns the value's type tag.
func (v Value) Kind() DataType { return v.kind }

// SizeBytes returns the width of the value's type, in bytes.
func (v Value) SizeBytes() int { return v.kind.SizeBytes() }

// NewU8 builds a U8 value.
func NewU8(x uint8) Value { return Value{kind: U8, bits: uint64(x)} }

// NewU16 builds a U16 value.
func NewU16(x uint16) Value { return Value{kind: U16, bits: uint64(x)} }

// NewU32 builds a U32 value.
func NewU32(x uint32) Value { return Value{kind: U32, bits: uint64(x)} }

// NewU64 builds a U64 value.
func NewU64(x uint64) Value { return Value{kind: U64, bits: x} }

// NewF32 builds an F32 value.
func NewF32(x float32) Value { return Value{kind: F32, bits: uint64(math.Float32bits(x))} }

// NewF64 builds an F64 value.
func NewF64(x float64) Value { return Value{kind: F64, bits: math.Float64bits(x)} }

// U8 returns the value reinterpreted as uint8. Only meaningful when Kind() == U8.
func (v Value) U8() uint8 { return uint8(v.bits) }

// U16 returns the value reinterpreted as uint16. Only meaningful when Kind() == U16.
func (v Value) U16() uint16 { return uint16(v.bits) }

// U32 returns the value reinterpreted as uint32. Only meaningful when Kind() == U32.
func (v Value) U32() uint32 { return uint32(v.bits) }

// U64 returns the value reinterpreted as uint64. Only meaningful when Kind() == U64.
func (v Value) U64() uint64 { return v.bits }

// F32 returns the value reinterpreted as float32. Only meaningful when Kind() == F32.
func (v Value) F32() float32 { return math.Float32frombits(uint32(v.bits)) }

// F64 returns the value reinterpreted as float64. Only meaningful when Kind() == F64.
func (v Value) F64() float64 { return math.Float64frombits(v.bits) }

// Format renders the value as text in the same shape Parse accepts, so
// that Parse(Format(v), v.Kind()) round-trips for every non-NaN value.
func (v Value) Format() string {
	switch v.kind {
	case U8:
		return formatUint(uint64(v.U8()))
	case U16:
		return formatUint(uint64(v.U16()))
	case U32:
		return formatUint(uint64(v.U32()))
	case U64:
		return formatUint(v.U64())
	case F32:
		return formatFloat(float64(v.F32()), 32)
	case F64:
		return formatFloat(v.F64(), 64)
	default:
		return ""
	}
}
