package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripwire/memscan/internal/cli"
	"github.com/tripwire/memscan/internal/remote"
	"github.com/tripwire/memscan/internal/value"
)

func Test_TrackAddCmd_Pins_Address_And_Persists(t *testing.T) {
	t.Parallel()

	env := testEnv(t)

	reader := remote.NewFake()
	reader.SetBytes(1, 0x1000, value.NewU32(7).Encode(value.Native))

	addCmd := cli.TrackAddCmd(env, reader)
	out, code := runCommand(t, addCmd, []string{"--pid", "1", "--addr", "0x1000", "--type", "u32"})
	require.Equal(t, 0, code)
	assert.Contains(t, out, "tracking pid=1")

	lsCmd := cli.TrackLsCmd(env)
	out, code = runCommand(t, lsCmd, nil)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "pid=1")
	assert.Contains(t, out, "value=7")
}

func Test_TrackAddCmd_Fails_On_Short_Read(t *testing.T) {
	t.Parallel()

	env := testEnv(t)

	reader := remote.NewFake()
	reader.SetBytes(1, 0x1000, value.NewU32(7).Encode(value.Native))
	reader.ShortAt(1, 0x1000, 2)

	addCmd := cli.TrackAddCmd(env, reader)
	_, code := runCommand(t, addCmd, []string{"--pid", "1", "--addr", "0x1000", "--type", "u32"})
	assert.Equal(t, 1, code)
}

func Test_TrackRmCmd_Removes_Previously_Added_Address(t *testing.T) {
	t.Parallel()

	env := testEnv(t)

	reader := remote.NewFake()
	reader.SetBytes(1, 0x1000, value.NewU32(7).Encode(value.Native))

	addCmd := cli.TrackAddCmd(env, reader)
	_, code := runCommand(t, addCmd, []string{"--pid", "1", "--addr", "0x1000", "--type", "u32"})
	require.Equal(t, 0, code)

	rmCmd := cli.TrackRmCmd(env)
	_, code = runCommand(t, rmCmd, []string{"--pid", "1", "--addr", "0x1000"})
	require.Equal(t, 0, code)

	lsCmd := cli.TrackLsCmd(env)
	out, code := runCommand(t, lsCmd, nil)
	require.Equal(t, 0, code)
	assert.NotContains(t, out, "pid=1")
}

func Test_TrackEditCmd_Updates_Remembered_Value_Without_Reading(t *testing.T) {
	t.Parallel()

	env := testEnv(t)

	reader := remote.NewFake()
	reader.SetBytes(1, 0x1000, value.NewU32(7).Encode(value.Native))

	addCmd := cli.TrackAddCmd(env, reader)
	_, code := runCommand(t, addCmd, []string{"--pid", "1", "--addr", "0x1000", "--type", "u32"})
	require.Equal(t, 0, code)

	editCmd := cli.TrackEditCmd(env)
	_, code = runCommand(t, editCmd, []string{"--pid", "1", "--addr", "0x1000", "--type", "u32", "--value", "42"})
	require.Equal(t, 0, code)

	lsCmd := cli.TrackLsCmd(env)
	out, code := runCommand(t, lsCmd, nil)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "value=42")
}

func Test_TrackRefreshCmd_Drops_Entry_On_Failure(t *testing.T) {
	t.Parallel()

	env := testEnv(t)

	reader := remote.NewFake()
	reader.SetBytes(1, 0x1000, value.NewU32(7).Encode(value.Native))

	addCmd := cli.TrackAddCmd(env, reader)
	_, code := runCommand(t, addCmd, []string{"--pid", "1", "--addr", "0x1000", "--type", "u32"})
	require.Equal(t, 0, code)

	brokenReader := remote.NewFake() // nothing registered: every read now fails
	refreshCmd := cli.TrackRefreshCmd(env, brokenReader)
	_, code = runCommand(t, refreshCmd, nil)
	require.Equal(t, 0, code)

	lsCmd := cli.TrackLsCmd(env)
	out, code := runCommand(t, lsCmd, nil)
	require.Equal(t, 0, code)
	assert.NotContains(t, out, "pid=1")
}
