package cli

import (
	"context"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/tripwire/memscan/internal/config"
	"github.com/tripwire/memscan/internal/remote"
	"github.com/tripwire/memscan/internal/scan"
	"github.com/tripwire/memscan/internal/value"
)

// RefineCmd narrows the stored result set against a new value.
func RefineCmd(cfg config.Config, env map[string]string, reader remote.Reader) *Command {
	flags := flag.NewFlagSet("refine", flag.ContinueOnError)
	flagType := flags.String("type", cfg.DefaultDataType, "Value type: u8, u16, u32, u64, f32, or f64")
	flagValue := flags.String("value", "", "Value to narrow the result set against")
	flagEndian := flags.String("endian", cfg.DefaultEndianness, "Endianness: native, little, or big")

	return &Command{
		Flags: flags,
		Usage: "refine [flags]",
		Short: "Narrow the last scan's result set against a new value",
		Exec: func(ctx context.Context, o *IO, _ []string) error {
			if *flagValue == "" {
				return fmt.Errorf("%w: --value", ErrRequiredFlag)
			}

			dt, err := value.ParseDataType(*flagType)
			if err != nil {
				return err
			}

			endian, err := value.ParseEndianness(*flagEndian)
			if err != nil {
				return err
			}

			path, err := resultSetPath(env)
			if err != nil {
				return err
			}

			prev, err := scan.Load(path)
			if err != nil {
				return fmt.Errorf("%w: run `memscan scan` first", err)
			}

			rs, err := scan.Refine(ctx, prev, dt, *flagValue, endian, reader, o)
			if err != nil {
				return err
			}

			if err := scan.Save(rs, path); err != nil {
				return err
			}

			o.Printf("%d match(es) remaining\n", len(rs.Hits))

			return nil
		},
	}
}
