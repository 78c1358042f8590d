package cli

import (
	"context"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/tripwire/memscan/internal/scan"
)

// ListCmd prints the current result set.
func ListCmd(env map[string]string) *Command {
	flags := flag.NewFlagSet("list", flag.ContinueOnError)
	flagLimit := flags.Int("limit", 20, "Maximum number of addresses to print")

	return &Command{
		Flags: flags,
		Usage: "list [flags]",
		Short: "Print the current result set",
		Exec: func(_ context.Context, o *IO, _ []string) error {
			path, err := resultSetPath(env)
			if err != nil {
				return err
			}

			rs, err := scan.Load(path)
			if err != nil {
				return fmt.Errorf("%w: run `memscan scan` first", err)
			}

			o.Printf("pid=%d type=%s endian=%s count=%d\n", firstPID(rs.Hits), rs.DataType, rs.Endianness, len(rs.Hits))

			n := *flagLimit
			if n > len(rs.Hits) {
				n = len(rs.Hits)
			}

			for _, hit := range rs.Hits[:n] {
				o.Printf("  pid=%d addr=%#x\n", hit.PID, hit.Addr)
			}

			if len(rs.Hits) > n {
				o.Printf("  ... and %d more\n", len(rs.Hits)-n)
			}

			return nil
		},
	}
}

func firstPID(hits []scan.Hit) int32 {
	if len(hits) == 0 {
		return 0
	}

	return hits[0].PID
}
