package remote

import "sort"

// fakeProcess is one simulated process's address space: a sparse set
// of byte ranges, plus optional injected faults keyed by start
// address.
type fakeProcess struct {
	ranges []fakeRange
	faults map[uint64]error
	shorts map[uint64]int
}

type fakeRange struct {
	start uint64
	data  []byte
}

// Fake is an in-memory Reader double for tests: it never touches a
// real process, serving bytes from maps populated by the test and
// optionally injecting short reads or errors at specific addresses.
type Fake struct {
	procs map[int32]*fakeProcess
}

// NewFake returns an empty Fake with no processes registered.
func NewFake() *Fake {
	return &Fake{procs: make(map[int32]*fakeProcess)}
}

func (f *Fake) proc(pid int32) *fakeProcess {
	p, ok := f.procs[pid]
	if !ok {
		p = &fakeProcess{faults: make(map[uint64]error), shorts: make(map[uint64]int)}
		f.procs[pid] = p
	}

	return p
}

// SetBytes installs data as the content of pid's address space
// starting at start, replacing any previous overlapping ranges
// registered at the same start address.
func (f *Fake) SetBytes(pid int32, start uint64, data []byte) {
	p := f.proc(pid)

	kept := p.ranges[:0]
	for _, rg := range p.ranges {
		if rg.start != start {
			kept = append(kept, rg)
		}
	}

	p.ranges = append(kept, fakeRange{start: start, data: data})
	sort.Slice(p.ranges, func(i, j int) bool { return p.ranges[i].start < p.ranges[j].start })
}

// FailAt makes any read whose start address equals addr return err
// instead of bytes.
func (f *Fake) FailAt(pid int32, addr uint64, err error) {
	f.proc(pid).faults[addr] = err
}

// ShortAt makes any read whose start address equals addr return at
// most n bytes with a nil error, simulating a read that straddles an
// unreadable page.
func (f *Fake) ShortAt(pid int32, addr uint64, n int) {
	f.proc(pid).shorts[addr] = n
}

// Read implements Reader.
func (f *Fake) Read(pid int32, addr uint64, buf []byte) (int, error) {
	p, ok := f.procs[pid]
	if !ok {
		return 0, ErrProcessNotFound
	}

	if err, ok := p.faults[addr]; ok {
		return 0, err
	}

	want := len(buf)
	if n, ok := p.shorts[addr]; ok && n < want {
		want = n
	}

	n := 0
	for _, rg := range p.ranges {
		covered := overlap(rg, addr, want)
		if covered == 0 {
			continue
		}
		copy(buf[n:], rg.data)
		n += covered
		if n >= want {
			break
		}
	}

	if n > want {
		n = want
	}

	return n, nil
}

// overlap returns how many bytes of rg a read of want bytes at addr is
// served from. Only a range registered at exactly addr counts: a range
// that starts anywhere else contributes nothing, even where it overlaps
// [addr, addr+want).
func overlap(rg fakeRange, addr uint64, want int) int {
	if rg.start != addr {
		return 0
	}

	n := len(rg.data)
	if n > want {
		n = want
	}

	return n
}

var _ Reader = (*Fake)(nil)
