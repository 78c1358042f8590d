package region_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripwire/memscan/internal/region"
)

func Test_Scope_String_And_Parse_Round_Trip(t *testing.T) {
	t.Parallel()

	for _, s := range []region.Scope{region.Stack, region.Heap, region.Both, region.AllReadable} {
		got, err := region.ParseScope(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func Test_ParseScope_Rejects_Unknown_Spelling(t *testing.T) {
	t.Parallel()

	_, err := region.ParseScope("kernel")
	assert.ErrorIs(t, err, region.ErrUnknownScope)
}

func Test_Region_Len_And_String(t *testing.T) {
	t.Parallel()

	r := region.Region{PID: 42, Start: 0x1000, End: 0x2000}
	assert.Equal(t, uint64(0x1000), r.Len())
	assert.Contains(t, r.String(), "pid=42")
}

func Test_Fake_Enumerate_Returns_Registered_Regions(t *testing.T) {
	t.Parallel()

	f := region.NewFake()
	want := []region.Region{{PID: 1, Start: 0x1000, End: 0x2000}}
	f.Set(1, region.Both, want)

	got, err := f.Enumerate(1, region.Both)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func Test_Fake_Enumerate_Returns_ErrNoSuchProcess_When_Unregistered(t *testing.T) {
	t.Parallel()

	f := region.NewFake()

	_, err := f.Enumerate(99, region.Both)
	assert.ErrorIs(t, err, region.ErrNoSuchProcess)
}
