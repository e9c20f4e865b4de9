package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/five82/snip/internal/app"
)

const usage = `Usage:
  snip [flags]                 interactive shortener
  snip [flags] shorten URL     shorten URL and print the short link
  snip [flags] resolve TOKEN   open the address for TOKEN

Flags:
`

type command struct {
	name string
	arg  string
	opts app.Options
}

var errHelp = errors.New("help requested")

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	cmd, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, errHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "snip: %v\n", err)
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	switch cmd.name {
	case "shorten":
		err = app.Shorten(ctx, cmd.opts, cmd.arg, os.Stdout)
	case "resolve":
		err = app.Resolve(cmd.opts, cmd.arg, os.Stdout)
	default:
		err = app.Run(ctx, cmd.opts)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "snip: %v\n", err)
		return 1
	}
	return 0
}

func parseArgs(args []string, stderr io.Writer) (command, error) {
	cmd := command{opts: app.Options{Version: version}}

	fs := pflag.NewFlagSet("snip", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	fs.StringVar(&cmd.opts.ConfigPath, "config", "", "config file path (default ~/.config/snip/config.toml)")
	fs.StringVar(&cmd.opts.PrefsPath, "prefs", "", "preferences file path (default ~/.config/snip/prefs.toml)")
	fs.StringVar(&cmd.opts.Overrides.Endpoint, "endpoint", "", "shortening endpoint URL")
	fs.StringVar(&cmd.opts.Overrides.ShortDomain, "short-domain", "", "prefix joined to returned tokens")
	fs.StringVar(&cmd.opts.Overrides.ResolveBase, "resolve-base", "", "backend base URL that resolves tokens")
	fs.StringVar(&cmd.opts.Overrides.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	fs.StringVar(&cmd.opts.Overrides.LogFile, "log-file", "", "log file for the interactive UI")
	fs.IntVar(&cmd.opts.Overrides.TimeoutSeconds, "timeout", 0, "shorten: request timeout in seconds (default 10)")
	fs.BoolVar(&cmd.opts.PrintOnly, "print", false, "resolve: print the address instead of opening a browser")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return command{}, errHelp
		}
		return command{}, err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return cmd, nil
	}

	cmd.name = rest[0]
	switch cmd.name {
	case "shorten", "resolve":
		if len(rest) != 2 {
			return command{}, fmt.Errorf("%s takes exactly one argument", cmd.name)
		}
		cmd.arg = rest[1]
	default:
		return command{}, fmt.Errorf("unknown command %q", cmd.name)
	}
	return cmd, nil
}
