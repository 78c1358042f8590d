//go:build amd64

package scanner

import "golang.org/x/sys/cpu"

// detectBackend probes the host's vector-instruction support, preferring
// the widest register width available: 256-bit (AVX2) first, then
// 128-bit (SSE4.2), then the scalar fallback.
//
// Grounded on the same golang.org/x/sys/cpu dispatch pattern used for
// runtime vector-feature detection in the retrieved SIMD CSV scanner
// (other_examples/…simdcsv__simd_scanner.go.go), which probes
// cpu.X86.HasAVX512* once at init and falls back to scalar whenever the
// feature bits it needs are absent — the same "detect once, prefer
// widest, fall back safely" shape, one tier down (AVX2/SSE4.2 rather
// than AVX-512) because the blocked walk here is a portable Go loop,
// not an intrinsic that can fault on an unsupported CPU.
func detectBackend() Backend {
	switch {
	case cpu.X86.HasAVX2:
		return Backend256
	case cpu.X86.HasSSE42:
		return Backend128
	default:
		return BackendScalar
	}
}
