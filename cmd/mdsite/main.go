package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	flag "github.com/spf13/pflag"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// isCommand reports whether arg names a command rather than a source root.
func isCommand(arg string) bool {
	switch arg {
	case "version", "help":
		return true
	}
	return false
}

// runMain dispatches args and returns the process exit code.
func runMain(args []string, env *Environment) int {
	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}

	if len(rest) > 0 && isCommand(rest[0]) {
		if rest[0] == "version" {
			fmt.Fprintf(env.Stdout, "mdsite %s\n", Version)
			return ExitSuccess
		}
		return runHelp(rest[1:], env)
	}

	flags, positional, err := parseBuildFlags(rest, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		fmt.Fprintln(env.Stderr, "Run 'mdsite help build' for usage.")
		return ExitUsage
	}

	logger := newLogger(env.Stderr, &flags.common)
	warnUnknownEnvVars(logger)
	if env.TuneMaxProcs != nil {
		env.TuneMaxProcs(logger)
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runBuild(ctx, positional, flags, logger, env); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// newLogger creates the CLI logger. --verbose enables debug output and
// --quiet keeps errors only.
func newLogger(w io.Writer, f *commonFlags) *log.Logger {
	level := log.InfoLevel
	switch {
	case f.verbose:
		level = log.DebugLevel
	case f.quiet:
		level = log.ErrorLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "mdsite",
		Level:  level,
	})
}
