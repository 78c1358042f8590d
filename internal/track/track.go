// Package track implements the tracked-address set: a small, explicit
// allowlist of (pid, addr) pairs a user has pinned from a result set,
// kept alongside their last-known typed value so a caller can refresh
// or edit them without re-scanning.
package track

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/tripwire/memscan/internal/remote"
	"github.com/tripwire/memscan/internal/value"
)

// ErrPokeNotImplemented is returned by Poke: writing to another
// process's memory is outside this module's scope, but the seam is
// named so a future implementation has somewhere to live.
var ErrPokeNotImplemented = errors.New("track: poke is not implemented")

// Key identifies one tracked address.
type Key struct {
	PID  int32
	Addr uint64
}

// Entry is one tracked address together with its type and last known
// value.
type Entry struct {
	Key
	DataType value.DataType
	Last     value.Value
}

// Set is a mutex-guarded collection of tracked addresses, safe for use
// from multiple goroutines (the CLI's signal-handling shutdown window
// can race a refresh against process exit).
type Set struct {
	mu      sync.Mutex
	entries map[Key]Entry
}

// NewSet returns an empty tracked set.
func NewSet() *Set {
	return &Set{entries: make(map[Key]Entry)}
}

// Toggle adds the (pid, addr) pair if absent, or removes it if
// present, returning whether it ended up tracked.
func (s *Set) Toggle(pid int32, addr uint64, dt value.DataType, last value.Value) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := Key{PID: pid, Addr: addr}

	if _, ok := s.entries[k]; ok {
		delete(s.entries, k)

		return false
	}

	s.entries[k] = Entry{Key: k, DataType: dt, Last: last}

	return true
}

// Remove drops a tracked address if present.
func (s *Set) Remove(pid int32, addr uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, Key{PID: pid, Addr: addr})
}

// List returns every tracked entry, ordered by (pid, addr) for stable
// CLI output.
func (s *Set) List() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].PID != out[j].PID {
			return out[i].PID < out[j].PID
		}

		return out[i].Addr < out[j].Addr
	})

	return out
}

// Edit overwrites the remembered value for an already-tracked address
// without touching remote memory; it only updates local bookkeeping
// (e.g. after the user corrects a misread value).
func (s *Set) Edit(pid int32, addr uint64, v value.Value) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := Key{PID: pid, Addr: addr}

	e, ok := s.entries[k]
	if !ok {
		return ErrNotTracked
	}

	e.Last = v
	s.entries[k] = e

	return nil
}

// RefreshAll re-reads every tracked address through reader, updating
// Last, and drops an entry outright when its read fails or comes up
// short: a tracked address that's no longer readable is no longer
// something the user can act on.
func (s *Set) RefreshAll(ctx context.Context, reader remote.Reader, endian value.Endianness) error {
	s.mu.Lock()
	keys := make([]Key, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	s.mu.Unlock()

	for _, k := range keys {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.mu.Lock()
		e, ok := s.entries[k]
		s.mu.Unlock()

		if !ok {
			continue
		}

		buf := make([]byte, e.DataType.SizeBytes())

		n, err := reader.Read(k.PID, k.Addr, buf)
		if err != nil || n < len(buf) {
			s.mu.Lock()
			delete(s.entries, k)
			s.mu.Unlock()

			continue
		}

		v, err := value.Cast(buf, e.DataType, endian)
		if err != nil {
			s.mu.Lock()
			delete(s.entries, k)
			s.mu.Unlock()

			continue
		}

		s.mu.Lock()
		e.Last = v
		s.entries[k] = e
		s.mu.Unlock()
	}

	return nil
}

// Poke would write a new value back into the tracked process's memory.
// Not implemented: remote writes are out of scope beyond naming this
// seam.
func Poke(_ context.Context, _ remote.Reader, _ Key, _ value.Value) error {
	return ErrPokeNotImplemented
}
