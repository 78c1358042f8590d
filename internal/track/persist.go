package track

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/tripwire/memscan/internal/value"
)

// storedEntry is the on-disk shape of one tracked address. value.Value
// doesn't marshal directly (its fields are unexported), so it's
// flattened to a type tag plus its formatted text representation.
type storedEntry struct {
	PID      int32  `json:"pid"`
	Addr     uint64 `json:"addr"`
	DataType string `json:"data_type"`
	Last     string `json:"last"`
}

// Save writes the set to path, replacing its contents atomically so a
// crash mid-write never leaves a truncated or corrupt file behind.
func (s *Set) Save(path string) error {
	entries := s.List()

	stored := make([]storedEntry, 0, len(entries))
	for _, e := range entries {
		stored = append(stored, storedEntry{
			PID:      e.PID,
			Addr:     e.Addr,
			DataType: e.DataType.String(),
			Last:     e.Last.Format(),
		})
	}

	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return err
	}

	return atomic.WriteFile(path, strings.NewReader(string(data)))
}

// Load replaces the set's contents with what's stored at path. A
// missing file is treated as an empty set, not an error.
func (s *Set) Load(path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is intentionally user-controlled
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return err
	}

	var stored []storedEntry
	if err := json.Unmarshal(data, &stored); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[Key]Entry, len(stored))

	for _, st := range stored {
		dt, err := value.ParseDataType(st.DataType)
		if err != nil {
			continue
		}

		v, err := value.Parse(st.Last, dt)
		if err != nil {
			continue
		}

		k := Key{PID: st.PID, Addr: st.Addr}
		s.entries[k] = Entry{Key: k, DataType: dt, Last: v}
	}

	return nil
}
