// Command memscan-cabi builds the Scalar Scanner's find-first
// primitives as a C shared library:
//
//	go build -buildmode=c-shared -o libmemscan.so ./cmd/memscan-cabi
//
// The generated header declares one function per scalar width; each is
// a direct forward into internal/cabi, which does the actual pointer
// and sentinel handling.
package main

// #include <stddef.h>
import "C"

import (
	"unsafe"

	"github.com/tripwire/memscan/internal/cabi"
)

//export memscan_find_first_u8
func memscan_find_first_u8(needle C.uint8_t, haystack unsafe.Pointer, haystackLen C.size_t) C.uint64_t {
	return C.uint64_t(cabi.FindFirstU8(uint8(needle), haystack, int(haystackLen)))
}

//export memscan_find_first_u16
func memscan_find_first_u16(needle C.uint16_t, haystack unsafe.Pointer, haystackLen C.size_t) C.uint64_t {
	return C.uint64_t(cabi.FindFirstU16(uint16(needle), haystack, int(haystackLen)))
}

//export memscan_find_first_u32
func memscan_find_first_u32(needle C.uint32_t, haystack unsafe.Pointer, haystackLen C.size_t) C.uint64_t {
	return C.uint64_t(cabi.FindFirstU32(uint32(needle), haystack, int(haystackLen)))
}

//export memscan_find_first_u64
func memscan_find_first_u64(needle C.uint64_t, haystack unsafe.Pointer, haystackLen C.size_t) C.uint64_t {
	return C.uint64_t(cabi.FindFirstU64(uint64(needle), haystack, int(haystackLen)))
}

//export memscan_find_first_f32
func memscan_find_first_f32(needle C.float, haystack unsafe.Pointer, haystackLen C.size_t) C.uint64_t {
	return C.uint64_t(cabi.FindFirstF32(float32(needle), haystack, int(haystackLen)))
}

//export memscan_find_first_f64
func memscan_find_first_f64(needle C.double, haystack unsafe.Pointer, haystackLen C.size_t) C.uint64_t {
	return C.uint64_t(cabi.FindFirstF64(float64(needle), haystack, int(haystackLen)))
}

func main() {}
