package scan

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/tripwire/memscan/internal/value"
)

type storedResultSet struct {
	DataType   string `json:"data_type"`
	Endianness string `json:"endianness"`
	Hits       []Hit  `json:"hits"`
}

// Save persists rs to path atomically, so `scan` followed by `refine`
// (each a separate process invocation) can hand off the result set
// between them.
func Save(rs ResultSet, path string) error {
	stored := storedResultSet{
		DataType:   rs.DataType.String(),
		Endianness: rs.Endianness.String(),
		Hits:       rs.Hits,
	}

	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return err
	}

	return atomic.WriteFile(path, strings.NewReader(string(data)))
}

// Load reads back a ResultSet previously written by Save.
func Load(path string) (ResultSet, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is intentionally user-controlled
	if err != nil {
		return ResultSet{}, err
	}

	var stored storedResultSet
	if err := json.Unmarshal(data, &stored); err != nil {
		return ResultSet{}, err
	}

	dt, err := value.ParseDataType(stored.DataType)
	if err != nil {
		return ResultSet{}, err
	}

	endian, err := value.ParseEndianness(stored.Endianness)
	if err != nil {
		return ResultSet{}, err
	}

	return ResultSet{DataType: dt, Endianness: endian, Hits: stored.Hits}, nil
}
