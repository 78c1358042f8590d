package scan_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripwire/memscan/internal/scan"
	"github.com/tripwire/memscan/internal/value"
)

func Test_Save_Load_Round_Trips_ResultSet(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "result.json")

	rs := scan.ResultSet{
		DataType:   value.U32,
		Endianness: value.Big,
		Hits:       []scan.Hit{{PID: 1, Addr: 0x1000}, {PID: 1, Addr: 0x2000}},
	}

	require.NoError(t, scan.Save(rs, path))

	got, err := scan.Load(path)
	require.NoError(t, err)
	assert.Equal(t, rs, got)
}

func Test_Load_Fails_On_Missing_File(t *testing.T) {
	t.Parallel()

	_, err := scan.Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
