//go:build !linux

package region

import "errors"

// errUnsupportedPlatform is returned by ProcFS on platforms without a
// /proc/<pid>/maps equivalent wired up here.
var errUnsupportedPlatform = errors.New("region: process memory map enumeration is not implemented on this platform")

// ProcFS is unimplemented outside Linux.
type ProcFS struct{}

// NewProcFS returns a ProcFS enumerator. Its Enumerate always fails on
// this platform.
func NewProcFS() *ProcFS { return &ProcFS{} }

// Enumerate implements Enumerator.
func (ProcFS) Enumerate(pid int32, scope Scope) ([]Region, error) {
	return nil, errUnsupportedPlatform
}

var _ Enumerator = (*ProcFS)(nil)
