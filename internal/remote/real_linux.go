//go:build linux

package remote

import (
	"fmt"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// Real reads another process's memory via the Linux vectored
// cross-process read syscall, process_vm_readv(2): one local iovec
// pointing at buf, one remote iovec describing [addr, addr+len(buf)).
type Real struct{}

// NewReal returns a Real remote reader.
func NewReal() *Real { return &Real{} }

// Read implements Reader.
func (r *Real) Read(pid int32, addr uint64, buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}

	local := []unix.Iovec{{Base: &buf[0], Len: uint64(len(buf))}}
	remote := []unix.RemoteIovec{{Base: uintptr(addr), Len: len(buf)}}

	n, err := unix.ProcessVMReadv(int(pid), local, remote, 0)
	if err == nil {
		return n, nil
	}

	if errno, ok := err.(syscall.Errno); ok && errno == syscall.ENOSYS {
		return r.readViaProcMem(pid, addr, buf)
	}

	return n, classify(pid, err)
}

// readViaProcMem falls back to pread(2) on /proc/<pid>/mem when
// process_vm_readv isn't available (old kernels, seccomp-restricted
// sandboxes). Still reports short reads instead of failing the whole
// request: the orchestrator only needs "how many bytes actually
// landed", regardless of which syscall produced them.
func (r *Real) readViaProcMem(pid int32, addr uint64, buf []byte) (int, error) {
	path := fmt.Sprintf("/proc/%d/mem", pid)

	f, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return 0, classify(pid, err)
	}
	defer f.Close()

	n, err := f.ReadAt(buf, int64(addr))
	if n > 0 {
		return n, nil
	}

	if err != nil {
		return 0, classify(pid, err)
	}

	return n, nil
}

// classify maps a raw OS error into the Reader error taxonomy.
func classify(pid int32, err error) error {
	errno, ok := err.(syscall.Errno)
	if !ok {
		return &OsError{Code: -1}
	}

	switch errno {
	case syscall.EPERM, syscall.EACCES:
		return fmt.Errorf("pid %d: %w", pid, ErrPermissionDenied)
	case syscall.ESRCH:
		return fmt.Errorf("pid %d: %w", pid, ErrProcessNotFound)
	default:
		return fmt.Errorf("pid %d: %w", pid, &OsError{Code: int(errno)})
	}
}

var _ Reader = (*Real)(nil)
