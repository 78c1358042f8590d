package value

import (
	"math"
	"math/bits"

	"github.com/tripwire/memscan/internal/scanner"
)

// needleBits returns v's payload reinterpreted for scanning, byte-swapped
// to host order first if v's logical endianness e is not Native.
//
// The scanner package only ever reads lanes in host order, so any
// endianness translation happens here, once, before dispatch, rather
// than inside the hot loop.
func (v Value) needleBits(e Endianness) uint64 {
	if e == Native {
		return v.bits
	}

	swapped := e != nativeByteOrder()
	if !swapped {
		return v.bits
	}

	switch v.kind {
	case U8:
		return v.bits
	case U16:
		return uint64(bits.ReverseBytes16(uint16(v.bits)))
	case U32, F32:
		return uint64(bits.ReverseBytes32(uint32(v.bits)))
	case U64, F64:
		return bits.ReverseBytes64(v.bits)
	default:
		return v.bits
	}
}

// Scan constructs a single-pass scan iterator over buf for v's type,
// treating v as encoded in endianness e.
func (v Value) Scan(buf []byte, e Endianness) scanner.Iter {
	needle := v.needleBits(e)

	switch v.kind {
	case U8:
		return scanner.NewFindIterator(uint8(needle), buf)
	case U16:
		return scanner.NewFindIterator(uint16(needle), buf)
	case U32:
		return scanner.NewFindIterator(uint32(needle), buf)
	case U64:
		return scanner.NewFindIterator(needle, buf)
	case F32:
		return scanner.NewFindIterator(math.Float32frombits(uint32(needle)), buf)
	case F64:
		return scanner.NewFindIterator(math.Float64frombits(needle), buf)
	default:
		return scanner.EmptyIterator{}
	}
}
