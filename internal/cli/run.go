package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/tripwire/memscan/internal/config"
	"github.com/tripwire/memscan/internal/region"
	"github.com/tripwire/memscan/internal/remote"
)

// Run is the main entry point. Returns exit code. sigCh can be nil if
// signal handling is not needed (e.g., in tests).
func Run(_ io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string, sigCh <-chan os.Signal) int {
	globalFlags := flag.NewFlagSet("memscan", flag.ContinueOnError)
	globalFlags.SetInterspersed(false)
	globalFlags.Usage = func() {}
	globalFlags.SetOutput(&strings.Builder{})
	flagHelp := globalFlags.BoolP("help", "h", false, "Show help")
	flagCwd := globalFlags.StringP("cwd", "C", "", "Run as if started in `dir`")
	flagConfig := globalFlags.StringP("config", "c", "", "Use specified config `file`")

	if err := globalFlags.Parse(args[1:]); err != nil {
		fprintln(errOut, "error:", err)
		printGlobalOptions(errOut)

		return 1
	}

	workDir := *flagCwd
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			fprintln(errOut, "error:", err)

			return 1
		}

		workDir = wd
	}

	envSlice := make([]string, 0, len(env))
	for k, v := range env {
		envSlice = append(envSlice, k+"="+v)
	}

	cfg, sources, err := config.Load(workDir, *flagConfig, envSlice)
	if err != nil {
		fprintln(errOut, "error:", err)
		printGlobalOptions(errOut)

		return 1
	}

	reader := remote.NewReal()
	enumerator := region.NewProcFS()

	commands := allCommands(cfg, sources, env, reader, enumerator)

	commandMap := make(map[string]*Command, len(commands))
	for _, cmd := range commands {
		commandMap[cmd.Name()] = cmd
	}

	commandAndArgs := globalFlags.Args()

	if *flagHelp || (len(commandAndArgs) == 0 && globalFlags.NFlag() == 0) {
		printUsage(out, commands)

		return 0
	}

	if len(commandAndArgs) == 0 {
		fprintln(errOut, "error: no command provided")
		printUsage(errOut, commands)

		return 1
	}

	cmd, rest, ok := resolveCommand(commandMap, commandAndArgs)
	if !ok {
		fprintln(errOut, "error: unknown command:", commandAndArgs[0])
		printUsage(errOut, commands)

		return 1
	}

	cmdIO := NewIO(out, errOut)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan int, 1)

	go func() {
		done <- cmd.Run(ctx, cmdIO, rest)
	}()

	select {
	case exitCode := <-done:
		if exitCode != 0 {
			return exitCode
		}

		return cmdIO.Finish()
	case <-sigCh:
		fprintln(errOut, "shutting down with 5s timeout...")
		cancel()
	}

	select {
	case <-done:
		fprintln(errOut, "graceful shutdown ok (130)")

		return 130
	case <-time.After(5 * time.Second):
		fprintln(errOut, "graceful shutdown timed out, forced exit (130)")

		return 130
	case <-sigCh:
		fprintln(errOut, "graceful shutdown interrupted, forced exit (130)")

		return 130
	}
}

func allCommands(cfg config.Config, sources config.Sources, env map[string]string, reader remote.Reader, enumerator region.Enumerator) []*Command {
	return []*Command{
		ScanCmd(cfg, env, reader, enumerator),
		RefineCmd(cfg, env, reader),
		ListCmd(env),
		TrackAddCmd(env, reader),
		TrackRmCmd(env),
		TrackLsCmd(env),
		TrackRefreshCmd(env, reader),
		TrackEditCmd(env),
		ConfigPrintCmd(cfg, sources),
	}
}

// resolveCommand matches the longest command name (two words for
// "track add" style subcommands, one word otherwise) against the
// front of commandAndArgs, returning the matched command and the
// remaining arguments to pass to it.
func resolveCommand(commandMap map[string]*Command, commandAndArgs []string) (*Command, []string, bool) {
	if len(commandAndArgs) >= 2 {
		two := commandAndArgs[0] + " " + commandAndArgs[1]
		if cmd, ok := commandMap[two]; ok {
			return cmd, commandAndArgs[2:], true
		}
	}

	if cmd, ok := commandMap[commandAndArgs[0]]; ok {
		return cmd, commandAndArgs[1:], true
	}

	return nil, nil, false
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

const globalOptionsHelp = `  -h, --help             Show help
  -C, --cwd <dir>        Run as if started in <dir>
  -c, --config <file>    Use specified config file`

func printGlobalOptions(w io.Writer) {
	fprintln(w, "Usage: memscan [flags] <command> [args]")
	fprintln(w)
	fprintln(w, "Global flags:")
	fprintln(w, globalOptionsHelp)
	fprintln(w)
	fprintln(w, "Run 'memscan --help' for a list of commands.")
}

func printUsage(w io.Writer, commands []*Command) {
	fprintln(w, "memscan - process memory scanner")
	fprintln(w)
	fprintln(w, "Usage: memscan [flags] <command> [args]")
	fprintln(w)
	fprintln(w, "Flags:")
	fprintln(w, globalOptionsHelp)
	fprintln(w)
	fprintln(w, "Commands:")

	for _, cmd := range commands {
		fprintln(w, cmd.HelpLine())
	}
}
