package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	configureMaxProcs(os.Args[1:], os.Stderr)
	os.Exit(run(os.Args[1:], DefaultEnv()))
}

// configureMaxProcs sets GOMAXPROCS from the container CPU quota.
// The adjustment is only reported with --verbose.
func configureMaxProcs(args []string, stderr io.Writer) {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	if wantsVerbose(args) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(stderr, format+"\n", args...)
		}))
		return
	}
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
}

// wantsVerbose scans raw arguments for -v or --verbose before any command
// parses its flags.
func wantsVerbose(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}

// run dispatches to a command and returns the process exit code.
func run(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "convert":
		return runConvertCmd(rest, env)
	case "build":
		return runBuildCmd(rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "md2html %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		return runHelp(rest, env)
	default:
		fmt.Fprintf(env.Stderr, "unknown command %q\n\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// runConvertCmd parses convert flags and runs the conversion.
func runConvertCmd(args []string, env *Environment) int {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		return flagError(err, env)
	}

	cfg, err := prepareConfig(&flags.common, &flags.workers, env)
	if err != nil {
		return report(err, env)
	}
	if err := mergeFlags(flags, cfg); err != nil {
		return report(err, env)
	}

	return withPool(cfg, flags.common.verbose, env, func(ctx context.Context, pool Pool) error {
		return runConvert(ctx, positional, flags, cfg, pool, env)
	})
}

// runBuildCmd parses build flags and builds the site.
func runBuildCmd(args []string, env *Environment) int {
	flags, positional, err := parseBuildFlags(args, env.Stderr)
	if err != nil {
		return flagError(err, env)
	}
	if len(positional) > 0 {
		fmt.Fprintf(env.Stderr, "build takes no arguments, got %q\n", positional)
		return ExitUsage
	}

	cfg, err := prepareConfig(&flags.common, &flags.workers, env)
	if err != nil {
		return report(err, env)
	}
	if err := mergeBuildFlags(flags, cfg); err != nil {
		return report(err, env)
	}

	return withPool(cfg, flags.common.verbose, env, func(ctx context.Context, pool Pool) error {
		return runBuild(ctx, flags, cfg, pool, env)
	})
}

// prepareConfig applies MD2HTML_* variables to unset flags, then loads the
// config file they name.
func prepareConfig(common *commonFlags, workers *int, env *Environment) (*config.Config, error) {
	warnUnknownEnvVars(env.Stderr)
	loadEnvConfig().applyTo(common, workers)
	return loadConfig(common.config)
}

// withPool runs fn with a converter pool sized from cfg and a context that
// is canceled on SIGINT or SIGTERM.
func withPool(cfg *config.Config, verbose bool, env *Environment, fn func(context.Context, Pool) error) int {
	size := md2html.ResolvePoolSize(cfg.Workers)
	if verbose {
		fmt.Fprintf(env.Stderr, "Pool size: %d\n", size)
	}
	pool := NewConverterPool(size, converterOptions(cfg)...)
	defer pool.Close()

	ctx, stop := notifyContext(context.Background())
	defer stop()

	return report(fn(ctx, pool), env)
}

// report prints err with its hints and maps it to an exit code.
func report(err error, env *Environment) int {
	if err == nil {
		return ExitSuccess
	}
	// Per-file failures were already printed with their hints.
	var batch *batchError
	if errors.As(err, &batch) {
		fmt.Fprintln(env.Stderr, err)
	} else {
		fmt.Fprintf(env.Stderr, "%v%s\n", err, hintFor(err))
	}
	return exitCodeFor(err)
}

// flagError reports a flag parsing error and maps it to an exit code.
// For -h, pflag has already printed the usage.
func flagError(err error, env *Environment) int {
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	fmt.Fprintf(env.Stderr, "%v\nRun 'md2html help' for usage.\n", err)
	return ExitUsage
}
