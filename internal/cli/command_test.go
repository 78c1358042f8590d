package cli_test

import (
	"context"
	"testing"

	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"

	"github.com/tripwire/memscan/internal/cli"
)

func Test_Command_Name_Stops_At_First_Placeholder_Word(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		usage string
		want  string
	}{
		{"scan [flags]", "scan"},
		{"track add [flags]", "track add"},
		{"track ls", "track ls"},
		{"show <id>", "show"},
	}

	for _, testCase := range testCases {
		c := &cli.Command{Usage: testCase.usage}
		assert.Equal(t, testCase.want, c.Name())
	}
}

func Test_Command_Run_Returns_Nonzero_On_Flag_Parse_Error(t *testing.T) {
	t.Parallel()

	flags := flag.NewFlagSet("scan", flag.ContinueOnError)
	c := &cli.Command{
		Flags: flags,
		Usage: "scan [flags]",
		Exec: func(context.Context, *cli.IO, []string) error {
			return nil
		},
	}

	io := cli.NewIO(discard{}, discard{})
	code := c.Run(context.Background(), io, []string{"--not-a-real-flag"})
	assert.Equal(t, 1, code)
}

func Test_Command_Run_Returns_One_On_Exec_Error(t *testing.T) {
	t.Parallel()

	flags := flag.NewFlagSet("scan", flag.ContinueOnError)
	c := &cli.Command{
		Flags: flags,
		Usage: "scan [flags]",
		Exec: func(context.Context, *cli.IO, []string) error {
			return assert.AnError
		},
	}

	io := cli.NewIO(discard{}, discard{})
	code := c.Run(context.Background(), io, nil)
	assert.Equal(t, 1, code)
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
