package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripwire/memscan/internal/cli"
	"github.com/tripwire/memscan/internal/config"
	"github.com/tripwire/memscan/internal/region"
	"github.com/tripwire/memscan/internal/remote"
	"github.com/tripwire/memscan/internal/value"
)

func Test_RefineCmd_Fails_Without_Prior_Scan(t *testing.T) {
	t.Parallel()

	env := testEnv(t)
	cmd := cli.RefineCmd(config.Default(), env, remote.NewFake())

	_, code := runCommand(t, cmd, []string{"--value", "7"})
	assert.Equal(t, 1, code)
}

func Test_RefineCmd_Narrows_Stored_Result_Set(t *testing.T) {
	t.Parallel()

	env := testEnv(t)

	enumerator := region.NewFake()
	enumerator.Set(1, region.Both, []region.Region{
		{PID: 1, Start: 0x1000, End: 0x1004},
		{PID: 1, Start: 0x2000, End: 0x2004},
	})

	reader := remote.NewFake()
	reader.SetBytes(1, 0x1000, value.NewU32(7).Encode(value.Native))
	reader.SetBytes(1, 0x2000, value.NewU32(7).Encode(value.Native))

	scanCmd := cli.ScanCmd(config.Default(), env, reader, enumerator)
	_, code := runCommand(t, scanCmd, []string{"--pid", "1", "--type", "u32", "--value", "7"})
	require.Equal(t, 0, code)

	// Value at 0x2000 changes; only 0x1000 should survive refine.
	reader.SetBytes(1, 0x2000, value.NewU32(99).Encode(value.Native))

	refineCmd := cli.RefineCmd(config.Default(), env, reader)
	out, code := runCommand(t, refineCmd, []string{"--type", "u32", "--value", "7"})
	require.Equal(t, 0, code)
	assert.Contains(t, out, "1 match(es) remaining")

	listCmd := cli.ListCmd(env)
	out, code = runCommand(t, listCmd, nil)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "count=1")
}
