package cli

import (
	"context"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/tripwire/memscan/internal/config"
	"github.com/tripwire/memscan/internal/region"
	"github.com/tripwire/memscan/internal/remote"
	"github.com/tripwire/memscan/internal/scan"
	"github.com/tripwire/memscan/internal/value"
)

// ScanCmd runs a fresh scan of a process's memory for occurrences of
// a value, replacing the stored result set.
func ScanCmd(cfg config.Config, env map[string]string, reader remote.Reader, enumerator region.Enumerator) *Command {
	flags := flag.NewFlagSet("scan", flag.ContinueOnError)
	flagPID := flags.Int32("pid", 0, "Target process id")
	flagScope := flags.String("scope", cfg.DefaultScope, "Region scope: stack, heap, both, or all")
	flagType := flags.String("type", cfg.DefaultDataType, "Value type: u8, u16, u32, u64, f32, or f64")
	flagValue := flags.String("value", "", "Value to search for")
	flagEndian := flags.String("endian", cfg.DefaultEndianness, "Endianness: native, little, or big")
	flagChunkSize := flags.Int("chunk-size", cfg.ChunkSize, "Bytes read per chunk")

	return &Command{
		Flags: flags,
		Usage: "scan [flags]",
		Short: "Scan a process's memory for a value",
		Exec: func(ctx context.Context, o *IO, _ []string) error {
			if *flagPID == 0 {
				return fmt.Errorf("%w: --pid", ErrRequiredFlag)
			}

			if *flagValue == "" {
				return fmt.Errorf("%w: --value", ErrRequiredFlag)
			}

			dt, err := value.ParseDataType(*flagType)
			if err != nil {
				return err
			}

			scope, err := region.ParseScope(*flagScope)
			if err != nil {
				return err
			}

			endian, err := value.ParseEndianness(*flagEndian)
			if err != nil {
				return err
			}

			regions, err := enumerator.Enumerate(*flagPID, scope)
			if err != nil {
				return err
			}

			rs, err := scan.Fresh(ctx, regions, dt, *flagValue, endian, scan.Options{ChunkSize: *flagChunkSize}, reader, o)
			if err != nil {
				return err
			}

			path, err := resultSetPath(env)
			if err != nil {
				return err
			}

			if err := scan.Save(rs, path); err != nil {
				return err
			}

			o.Printf("found %d match(es)\n", len(rs.Hits))

			return nil
		},
	}
}
