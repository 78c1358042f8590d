package track_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripwire/memscan/internal/remote"
	"github.com/tripwire/memscan/internal/track"
	"github.com/tripwire/memscan/internal/value"
)

func Test_Toggle_Adds_Then_Removes(t *testing.T) {
	t.Parallel()

	s := track.NewSet()

	nowTracked := s.Toggle(1, 0x1000, value.U32, value.NewU32(7))
	assert.True(t, nowTracked)
	assert.Len(t, s.List(), 1)

	nowTracked = s.Toggle(1, 0x1000, value.U32, value.NewU32(7))
	assert.False(t, nowTracked)
	assert.Empty(t, s.List())
}

func Test_List_Is_Sorted_By_Pid_Then_Addr(t *testing.T) {
	t.Parallel()

	s := track.NewSet()
	s.Toggle(2, 0x1000, value.U32, value.NewU32(1))
	s.Toggle(1, 0x2000, value.U32, value.NewU32(1))
	s.Toggle(1, 0x1000, value.U32, value.NewU32(1))

	entries := s.List()
	require.Len(t, entries, 3)
	assert.Equal(t, track.Key{PID: 1, Addr: 0x1000}, entries[0].Key)
	assert.Equal(t, track.Key{PID: 1, Addr: 0x2000}, entries[1].Key)
	assert.Equal(t, track.Key{PID: 2, Addr: 0x1000}, entries[2].Key)
}

func Test_Edit_Updates_Tracked_Entry(t *testing.T) {
	t.Parallel()

	s := track.NewSet()
	s.Toggle(1, 0x1000, value.U32, value.NewU32(1))

	require.NoError(t, s.Edit(1, 0x1000, value.NewU32(42)))

	entries := s.List()
	require.Len(t, entries, 1)
	assert.Equal(t, value.NewU32(42), entries[0].Last)
}

func Test_Edit_Returns_ErrNotTracked_For_Unknown_Address(t *testing.T) {
	t.Parallel()

	s := track.NewSet()

	err := s.Edit(1, 0x9999, value.NewU32(1))
	assert.ErrorIs(t, err, track.ErrNotTracked)
}

func Test_RefreshAll_Updates_Value_On_Success(t *testing.T) {
	t.Parallel()

	s := track.NewSet()
	s.Toggle(1, 0x1000, value.U32, value.NewU32(1))

	reader := remote.NewFake()
	reader.SetBytes(1, 0x1000, value.NewU32(99).Encode(value.Native))

	require.NoError(t, s.RefreshAll(context.Background(), reader, value.Native))

	entries := s.List()
	require.Len(t, entries, 1)
	assert.Equal(t, value.NewU32(99), entries[0].Last)
}

func Test_RefreshAll_Drops_Entry_On_Failure(t *testing.T) {
	t.Parallel()

	s := track.NewSet()
	s.Toggle(1, 0x1000, value.U32, value.NewU32(1))

	reader := remote.NewFake() // no bytes registered: every read fails

	require.NoError(t, s.RefreshAll(context.Background(), reader, value.Native))

	assert.Empty(t, s.List())
}

func Test_RefreshAll_Drops_Entry_On_Short_Read(t *testing.T) {
	t.Parallel()

	s := track.NewSet()
	s.Toggle(1, 0x1000, value.U32, value.NewU32(1))

	reader := remote.NewFake()
	reader.SetBytes(1, 0x1000, value.NewU32(1).Encode(value.Native))
	reader.ShortAt(1, 0x1000, 2)

	require.NoError(t, s.RefreshAll(context.Background(), reader, value.Native))

	assert.Empty(t, s.List())
}

func Test_Poke_Returns_ErrPokeNotImplemented(t *testing.T) {
	t.Parallel()

	err := track.Poke(context.Background(), remote.NewFake(), track.Key{PID: 1, Addr: 0x1000}, value.NewU32(1))
	assert.ErrorIs(t, err, track.ErrPokeNotImplemented)
}
