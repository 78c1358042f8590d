package value

import (
	"encoding/binary"
	"math"
)

// nativeByteOrder reports which of Little/Big matches the host's byte
// order, resolved once at package init and never re-derived: the
// answer cannot change while the process runs.
var nativeByteOrderOnce = func() Endianness {
	var x uint16 = 0x0102

	buf := [2]byte{}
	binary.NativeEndian.PutUint16(buf[:], x)

	if buf[0] == 0x01 {
		return Big
	}

	return Little
}()

func nativeByteOrder() Endianness { return nativeByteOrderOnce }

func byteOrder(e Endianness) binary.ByteOrder {
	switch e {
	case Little:
		return binary.LittleEndian
	case Big:
		return binary.BigEndian
	case Native:
		return binary.NativeEndian
	default:
		return nil
	}
}

// Encode serializes the value into exactly SizeBytes() bytes using the
// requested byte order.
func (v Value) Encode(e Endianness) []byte {
	order := byteOrder(e)

	buf := make([]byte, v.SizeBytes())

	switch v.kind {
	case U8:
		buf[0] = v.U8()
	case U16:
		order.PutUint16(buf, v.U16())
	case U32:
		order.PutUint32(buf, v.U32())
	case U64:
		order.PutUint64(buf, v.U64())
	case F32:
		order.PutUint32(buf, math.Float32bits(v.F32()))
	case F64:
		order.PutUint64(buf, math.Float64bits(v.F64()))
	}

	return buf
}

// Cast reinterprets the leading SizeBytes(dt) bytes of buf as a Value
// of type dt, under the requested byte order.
//
// Requires len(buf) >= SizeBytes(dt); returns ErrBufferTooSmall
// otherwise without reading past the slice.
func Cast(buf []byte, dt DataType, e Endianness) (Value, error) {
	n := dt.SizeBytes()
	if len(buf) < n {
		return Value{}, ErrBufferTooSmall
	}

	order := byteOrder(e)
	if order == nil {
		return Value{}, ErrUnknownEndianness
	}

	switch dt {
	case U8:
		return NewU8(buf[0]), nil
	case U16:
		return NewU16(order.Uint16(buf)), nil
	case U32:
		return NewU32(order.Uint32(buf)), nil
	case U64:
		return NewU64(order.Uint64(buf)), nil
	case F32:
		return NewF32(math.Float32frombits(order.Uint32(buf))), nil
	case F64:
		return NewF64(math.Float64frombits(order.Uint64(buf))), nil
	default:
		return Value{}, ErrUnknownDataType
	}
}

// EqBytes reports whether v equals the value encoded by the leading
// SizeBytes() bytes of buf under endianness e.
//
// Precondition: len(buf) >= v.SizeBytes(). Violating the precondition
// fails safely (returns false) instead of reading past the slice.
//
// Comparison is IEEE-754 ordered equality for F32/F64: a NaN needle (or
// a NaN found in buf) never compares equal, even bit-for-bit, matching
// the scanner's NaN handling. Integer widths compare as plain
// bit-exact equality, which for finite integers is the same thing.
func (v Value) EqBytes(buf []byte, e Endianness) bool {
	other, err := Cast(buf, v.kind, e)
	if err != nil {
		return false
	}

	switch v.kind {
	case U8:
		return v.U8() == other.U8()
	case U16:
		return v.U16() == other.U16()
	case U32:
		return v.U32() == other.U32()
	case U64:
		return v.U64() == other.U64()
	case F32:
		return v.F32() == other.F32()
	case F64:
		return v.F64() == other.F64()
	default:
		return false
	}
}
