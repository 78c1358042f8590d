//go:build !linux

package remote

import "errors"

// errUnsupportedPlatform is returned by Real on platforms where no
// cross-process memory read has been wired up. process_vm_readv is
// Linux-specific; a macOS/BSD backend would need mach_vm_read or
// ptrace(PT_IO), neither of which is grounded in anything this module
// imports, so Real is honest about not working there rather than
// faking a read.
var errUnsupportedPlatform = errors.New("remote: cross-process memory reads are not implemented on this platform")

// Real is unimplemented outside Linux.
type Real struct{}

// NewReal returns a Real remote reader. Its Read always fails on this
// platform.
func NewReal() *Real { return &Real{} }

// Read implements Reader.
func (r *Real) Read(pid int32, addr uint64, buf []byte) (int, error) {
	return 0, errUnsupportedPlatform
}

var _ Reader = (*Real)(nil)
