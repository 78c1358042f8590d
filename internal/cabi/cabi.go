// Package cabi exposes the scanner's find-first primitives under plain,
// cgo-exportable names for foreign callers.
//
// Sentinel choice: "not found" is reported as math.MaxUint64, a
// reserved out-of-range offset, rather than an out-parameter flag. A
// genuine offset never exceeds len(buf)-sizeof(T), let alone
// MaxUint64, so the sentinel is unambiguous.
//
// No package-level mutable state is observable across calls: every
// function here is a pure forward to internal/scanner, whose own
// process-wide state (the Dispatch Layer's cached CPU probe) is
// write-once and therefore invariant from any caller's perspective.
//
// Building this package as a C shared library (`go build -buildmode=c-shared`)
// requires a `main` package with `import "C"` and `//export` comments;
// those live in cmd/memscan-cabi, which thinly re-exports the functions
// below. This package itself stays import-"C"-free so it can be unit
// tested with the normal Go toolchain.
package cabi

import (
	"math"
	"unsafe"

	"github.com/tripwire/memscan/internal/scanner"
)

// NotFound is the sentinel offset returned when no match exists.
const NotFound uint64 = math.MaxUint64

func bytesFrom(ptr unsafe.Pointer, length int) []byte {
	if length == 0 {
		return nil
	}

	return unsafe.Slice((*byte)(ptr), length)
}

func sentinel(off int, ok bool) uint64 {
	if !ok {
		return NotFound
	}

	return uint64(off)
}

// FindFirstU8 mirrors the original's find_first_u8 entry point.
func FindFirstU8(needle uint8, haystackPtr unsafe.Pointer, haystackLen int) uint64 {
	off, ok := scanner.FindNext(needle, bytesFrom(haystackPtr, haystackLen))

	return sentinel(off, ok)
}

// FindFirstU16 mirrors the original's find_first_u16 entry point.
func FindFirstU16(needle uint16, haystackPtr unsafe.Pointer, haystackLen int) uint64 {
	off, ok := scanner.FindNext(needle, bytesFrom(haystackPtr, haystackLen))

	return sentinel(off, ok)
}

// FindFirstU32 mirrors the original's find_first_u32 entry point.
func FindFirstU32(needle uint32, haystackPtr unsafe.Pointer, haystackLen int) uint64 {
	off, ok := scanner.FindNext(needle, bytesFrom(haystackPtr, haystackLen))

	return sentinel(off, ok)
}

// FindFirstU64 mirrors the original's find_first_u64 entry point.
func FindFirstU64(needle uint64, haystackPtr unsafe.Pointer, haystackLen int) uint64 {
	off, ok := scanner.FindNext(needle, bytesFrom(haystackPtr, haystackLen))

	return sentinel(off, ok)
}

// FindFirstF32 mirrors the original's find_first_f32 entry point.
// A NaN needle always returns NotFound.
func FindFirstF32(needle float32, haystackPtr unsafe.Pointer, haystackLen int) uint64 {
	off, ok := scanner.FindNext(needle, bytesFrom(haystackPtr, haystackLen))

	return sentinel(off, ok)
}

// FindFirstF64 mirrors the original's find_first_f64 entry point.
// A NaN needle always returns NotFound.
func FindFirstF64(needle float64, haystackPtr unsafe.Pointer, haystackLen int) uint64 {
	off, ok := scanner.FindNext(needle, bytesFrom(haystackPtr, haystackLen))

	return sentinel(off, ok)
}
