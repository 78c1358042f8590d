package cli

import (
	"context"
	"fmt"
	"strconv"

	flag "github.com/spf13/pflag"

	"github.com/tripwire/memscan/internal/remote"
	"github.com/tripwire/memscan/internal/track"
	"github.com/tripwire/memscan/internal/value"
)

func loadTrackedSet(env map[string]string) (*track.Set, string, error) {
	path, err := trackedSetPath(env)
	if err != nil {
		return nil, "", err
	}

	set := track.NewSet()
	if err := set.Load(path); err != nil {
		return nil, "", err
	}

	return set, path, nil
}

// TrackAddCmd pins a single address, recording its current type and value.
func TrackAddCmd(env map[string]string, reader remote.Reader) *Command {
	flags := flag.NewFlagSet("track add", flag.ContinueOnError)
	flagPID := flags.Int32("pid", 0, "Target process id")
	flagAddr := flags.String("addr", "", "Address, in hex (e.g. 0x7ffd1234)")
	flagType := flags.String("type", value.DefaultDataType.String(), "Value type")

	return &Command{
		Flags: flags,
		Usage: "track add [flags]",
		Short: "Pin an address to the tracked set",
		Exec: func(_ context.Context, o *IO, _ []string) error {
			if *flagPID == 0 {
				return fmt.Errorf("%w: --pid", ErrRequiredFlag)
			}

			addr, err := parseHexAddr(*flagAddr)
			if err != nil {
				return err
			}

			dt, err := value.ParseDataType(*flagType)
			if err != nil {
				return err
			}

			buf := make([]byte, dt.SizeBytes())

			n, err := reader.Read(*flagPID, addr, buf)
			if err != nil {
				return err
			}

			if n < len(buf) {
				return ErrShortRead
			}

			v, err := value.Cast(buf, dt, value.DefaultEndianness)
			if err != nil {
				return err
			}

			set, path, err := loadTrackedSet(env)
			if err != nil {
				return err
			}

			set.Toggle(*flagPID, addr, dt, v)

			if err := set.Save(path); err != nil {
				return err
			}

			o.Printf("tracking pid=%d addr=%#x value=%s\n", *flagPID, addr, v.Format())

			return nil
		},
	}
}

// TrackRmCmd unpins an address.
func TrackRmCmd(env map[string]string) *Command {
	flags := flag.NewFlagSet("track rm", flag.ContinueOnError)
	flagPID := flags.Int32("pid", 0, "Target process id")
	flagAddr := flags.String("addr", "", "Address, in hex")

	return &Command{
		Flags: flags,
		Usage: "track rm [flags]",
		Short: "Unpin an address from the tracked set",
		Exec: func(_ context.Context, o *IO, _ []string) error {
			addr, err := parseHexAddr(*flagAddr)
			if err != nil {
				return err
			}

			set, path, err := loadTrackedSet(env)
			if err != nil {
				return err
			}

			set.Remove(*flagPID, addr)

			return set.Save(path)
		},
	}
}

// TrackLsCmd lists every tracked address.
func TrackLsCmd(env map[string]string) *Command {
	flags := flag.NewFlagSet("track ls", flag.ContinueOnError)

	return &Command{
		Flags: flags,
		Usage: "track ls",
		Short: "List tracked addresses",
		Exec: func(_ context.Context, o *IO, _ []string) error {
			set, _, err := loadTrackedSet(env)
			if err != nil {
				return err
			}

			for _, e := range set.List() {
				o.Printf("pid=%d addr=%#x type=%s value=%s\n", e.PID, e.Addr, e.DataType, e.Last.Format())
			}

			return nil
		},
	}
}

// TrackRefreshCmd re-reads every tracked address.
func TrackRefreshCmd(env map[string]string, reader remote.Reader) *Command {
	flags := flag.NewFlagSet("track refresh", flag.ContinueOnError)

	return &Command{
		Flags: flags,
		Usage: "track refresh",
		Short: "Re-read every tracked address",
		Exec: func(ctx context.Context, o *IO, _ []string) error {
			set, path, err := loadTrackedSet(env)
			if err != nil {
				return err
			}

			if err := set.RefreshAll(ctx, reader, value.DefaultEndianness); err != nil {
				return err
			}

			return set.Save(path)
		},
	}
}

// TrackEditCmd overwrites the remembered value for a tracked address
// without touching remote memory.
func TrackEditCmd(env map[string]string) *Command {
	flags := flag.NewFlagSet("track edit", flag.ContinueOnError)
	flagPID := flags.Int32("pid", 0, "Target process id")
	flagAddr := flags.String("addr", "", "Address, in hex")
	flagType := flags.String("type", value.DefaultDataType.String(), "Value type")
	flagValue := flags.String("value", "", "New remembered value")

	return &Command{
		Flags: flags,
		Usage: "track edit [flags]",
		Short: "Edit the remembered value for a tracked address",
		Exec: func(_ context.Context, o *IO, _ []string) error {
			addr, err := parseHexAddr(*flagAddr)
			if err != nil {
				return err
			}

			dt, err := value.ParseDataType(*flagType)
			if err != nil {
				return err
			}

			v, err := value.Parse(*flagValue, dt)
			if err != nil {
				return err
			}

			set, path, err := loadTrackedSet(env)
			if err != nil {
				return err
			}

			if err := set.Edit(*flagPID, addr, v); err != nil {
				return err
			}

			return set.Save(path)
		},
	}
}

func parseHexAddr(s string) (uint64, error) {
	trimmed := s
	if len(trimmed) >= 2 && (trimmed[:2] == "0x" || trimmed[:2] == "0X") {
		trimmed = trimmed[2:]
	}

	return strconv.ParseUint(trimmed, 16, 64)
}
