// Package scanner implements the vectorized needle/range scanner over
// byte buffers: three backends of increasing register width dispatched
// once per process via a one-shot CPU-feature probe, all built from
// one generic, alignment-aware blocked walk so the six scalar widths
// never need eighteen hand-written copies.
package scanner

// Numeric is the closed set of scalar types the scanner supports.
// Closed by construction: every exported entry point is instantiated
// only for these six types (the dispatch layer and value package never
// call it with anything else).
type Numeric interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// Iter is the type-erased shape of a single-pass scan iterator, used by
// callers (like internal/value.Value.Scan) that need to return one of
// six differently-typed Iterator[T] values from a single function.
type Iter interface {
	// Next returns the next absolute byte offset matching the
	// iterator's needle or range, and false once exhausted.
	//
	// Single-pass: once Next returns false, it returns false on every
	// subsequent call. It never resets to the start once exhausted.
	Next() (int, bool)
}

// EmptyIterator is an Iter that never yields anything, used as the
// closed-switch default when no other case applies.
type EmptyIterator struct{}

// Next always reports no more results.
func (EmptyIterator) Next() (int, bool) { return 0, false }
