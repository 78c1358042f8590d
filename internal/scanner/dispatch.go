package scanner

import "sync"

// Backend identifies which register-width tier has been selected for
// this process.
type Backend int

const (
	// BackendScalar is the mandatory fallback: no vector register
	// blocking, correct on every platform.
	BackendScalar Backend = iota
	// Backend128 blocks the scan in 16-byte (128-bit) windows.
	Backend128
	// Backend256 blocks the scan in 32-byte (256-bit) windows.
	Backend256
)

// String names the backend the way diagnostics and benchmarks report it.
func (b Backend) String() string {
	switch b {
	case BackendScalar:
		return "scalar"
	case Backend128:
		return "128-bit"
	case Backend256:
		return "256-bit"
	default:
		return "unknown"
	}
}

var (
	dispatchOnce sync.Once
	dispatched   Backend
)

// Dispatch detects CPU capabilities on first use and caches the result
// for the remainder of the process: concurrent first calls are safe
// because the detected value is invariant once computed, so a plain
// sync.Once is sufficient — no broader locking is needed anywhere in
// this package.
func Dispatch() Backend {
	dispatchOnce.Do(func() {
		dispatched = detectBackend()
	})

	return dispatched
}

// regWidthFor returns the byte width of the "register" a backend blocks
// scans into. BackendScalar's width is the element's own width: at that
// degenerate block size the blocked walk in algo.go collapses to a
// plain linear scan (see algo.go doc comment).
func regWidthFor(b Backend, elemWidth int) int {
	switch b {
	case Backend256:
		return 32
	case Backend128:
		return 16
	default:
		return elemWidth
	}
}
