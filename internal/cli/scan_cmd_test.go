package cli_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripwire/memscan/internal/cli"
	"github.com/tripwire/memscan/internal/config"
	"github.com/tripwire/memscan/internal/region"
	"github.com/tripwire/memscan/internal/remote"
	"github.com/tripwire/memscan/internal/value"
)

func testEnv(t *testing.T) map[string]string {
	t.Helper()

	return map[string]string{"XDG_STATE_HOME": filepath.Join(t.TempDir(), "state")}
}

func runCommand(t *testing.T, c *cli.Command, args []string) (string, int) {
	t.Helper()

	var out bytes.Buffer
	io := cli.NewIO(&out, &out)

	code := c.Run(context.Background(), io, args)
	code2 := io.Finish()

	if code != 0 {
		return out.String(), code
	}

	return out.String(), code2
}

func Test_ScanCmd_Requires_Pid_And_Value(t *testing.T) {
	t.Parallel()

	env := testEnv(t)
	cmd := cli.ScanCmd(config.Default(), env, remote.NewFake(), region.NewFake())

	_, code := runCommand(t, cmd, nil)
	assert.Equal(t, 1, code)
}

func Test_ScanCmd_Finds_Matches_And_Saves_Result_Set(t *testing.T) {
	t.Parallel()

	env := testEnv(t)

	reader := remote.NewFake()
	reader.SetBytes(1, 0x1000, value.NewU32(7).Encode(value.Native))

	enumerator := region.NewFake()
	enumerator.Set(1, region.Both, []region.Region{{PID: 1, Start: 0x1000, End: 0x1004}})

	cmd := cli.ScanCmd(config.Default(), env, reader, enumerator)

	out, code := runCommand(t, cmd, []string{"--pid", "1", "--type", "u32", "--value", "7"})
	require.Equal(t, 0, code)
	assert.Contains(t, out, "found 1 match(es)")
}

func Test_ScanCmd_Rejects_Unknown_Scope(t *testing.T) {
	t.Parallel()

	env := testEnv(t)
	cmd := cli.ScanCmd(config.Default(), env, remote.NewFake(), region.NewFake())

	_, code := runCommand(t, cmd, []string{"--pid", "1", "--value", "7", "--scope", "kernel"})
	assert.Equal(t, 1, code)
}
