//go:build linux

package region

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ProcFS enumerates regions by parsing /proc/<pid>/maps, the standard
// Linux source of a process's memory layout.
type ProcFS struct{}

// NewProcFS returns a ProcFS enumerator.
func NewProcFS() *ProcFS { return &ProcFS{} }

// Enumerate implements Enumerator.
func (ProcFS) Enumerate(pid int32, scope Scope) ([]Region, error) {
	path := fmt.Sprintf("/proc/%d/maps", pid)

	f, err := os.Open(path) //nolint:gosec // pid-derived path is the entire point of this function
	if err != nil {
		return nil, fmt.Errorf("%w: pid %d", ErrNoSuchProcess, pid)
	}
	defer f.Close()

	var regions []Region

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()

		r, label, ok := parseMapsLine(pid, line)
		if !ok {
			continue
		}

		if !matchesScope(scope, label) {
			continue
		}

		regions = append(regions, r)
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}

	return regions, nil
}

// parseMapsLine decodes one /proc/<pid>/maps line, of the form:
//
//	<start>-<end> <perms> <offset> <dev> <inode> [pathname]
//
// Returns ok=false for unreadable (no 'r' permission) mappings, which
// this package never needs to scan.
func parseMapsLine(pid int32, line string) (Region, string, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Region{}, "", false
	}

	addrRange := fields[0]
	perms := fields[1]

	if !strings.HasPrefix(perms, "r") {
		return Region{}, "", false
	}

	start, end, ok := strings.Cut(addrRange, "-")
	if !ok {
		return Region{}, "", false
	}

	startAddr, err := strconv.ParseUint(start, 16, 64)
	if err != nil {
		return Region{}, "", false
	}

	endAddr, err := strconv.ParseUint(end, 16, 64)
	if err != nil {
		return Region{}, "", false
	}

	label := ""
	if len(fields) >= 6 {
		label = fields[5]
	}

	return Region{PID: pid, Start: startAddr, End: endAddr}, label, true
}

func matchesScope(scope Scope, label string) bool {
	switch scope {
	case AllReadable:
		return true
	case Stack:
		return strings.Contains(label, "[stack")
	case Heap:
		return strings.Contains(label, "[heap]")
	case Both:
		return strings.Contains(label, "[stack") || strings.Contains(label, "[heap]")
	default:
		return false
	}
}

var _ Enumerator = (*ProcFS)(nil)
