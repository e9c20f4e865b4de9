package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/five82/snip/internal/config"
	"github.com/five82/snip/internal/logging"
	"github.com/five82/snip/internal/relay"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := pflag.String("config", "", "config file path (default ~/.config/snip/config.toml)")
	var overrides config.Overrides
	pflag.StringVar(&overrides.ListenAddr, "listen", "", "address to listen on")
	pflag.StringVar(&overrides.ResolveBase, "resolve-base", "", "backend base URL that resolves tokens")
	pflag.StringVar(&overrides.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	pflag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(*configPath)
	if err == nil {
		cfg, err = cfg.With(overrides)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "snip-relay: %v\n", err)
		return 1
	}

	logger, err := logging.New(cfg.LogLevel, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "snip-relay: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	if err := relay.Run(ctx, relay.NewInjector(cfg, logger)); err != nil {
		logger.Error("relay stopped", zap.Error(err))
		return 1
	}
	return 0
}
