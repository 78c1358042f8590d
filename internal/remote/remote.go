// Package remote copies ranges from another process's address space
// into a local buffer, reporting short reads and per-address errors
// without aborting the caller's scan.
//
// A narrow interface (Reader) has one production implementation backed
// by real OS calls (Real) and one fault-injecting test double (Fake).
package remote

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Real wraps the underlying errno into one of
// these via classify (see real_linux.go); Fake returns them directly
// so tests can assert on exact kinds without caring about an OS's
// specific errno values.
var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrProcessNotFound  = errors.New("process not found")
)

// OsError wraps any OS-level read failure that is neither a permission
// nor a process-existence problem, carrying the raw errno for
// diagnostics.
type OsError struct {
	Code int
}

func (e *OsError) Error() string {
	return fmt.Sprintf("os error: code %d", e.Code)
}

// Reader copies bytes from pid's address space starting at addr into
// buf, returning the number of bytes actually copied.
//
// A return of n < len(buf) with a nil error is a short read: the
// remote range straddled an unreadable page boundary. Callers must
// treat this as a non-fatal warning and process only buf[:n].
//
// A non-nil error is a hard failure for this read; callers log it and
// move on to the next chunk or address.
type Reader interface {
	Read(pid int32, addr uint64, buf []byte) (int, error)
}
