package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"github.com/tripwire/memscan/internal/config"
)

// ConfigPrintCmd prints the effective configuration and which files
// contributed to it.
func ConfigPrintCmd(cfg config.Config, sources config.Sources) *Command {
	flags := flag.NewFlagSet("config print", flag.ContinueOnError)

	return &Command{
		Flags: flags,
		Usage: "config print",
		Short: "Print effective configuration",
		Exec: func(_ context.Context, o *IO, _ []string) error {
			text, err := config.Format(cfg)
			if err != nil {
				return err
			}

			o.Println(text)
			o.Println()

			if sources.Global != "" {
				o.Printf("global config: %s\n", sources.Global)
			}

			if sources.Project != "" {
				o.Printf("project config: %s\n", sources.Project)
			}

			return nil
		},
	}
}
