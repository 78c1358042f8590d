//go:build !amd64

package scanner

// detectBackend always selects the scalar fallback on platforms without
// the x86 vector feature bits this package knows how to probe (ARM,
// or any other portable target). The scalar backend produces identical
// results to the wider tiers by construction (see algo.go), so this is
// a performance choice, never a correctness one.
func detectBackend() Backend {
	return BackendScalar
}
