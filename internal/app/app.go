package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/five82/snip/internal/clipboard"
	"github.com/five82/snip/internal/config"
	"github.com/five82/snip/internal/logging"
	"github.com/five82/snip/internal/prefs"
	"github.com/five82/snip/internal/shortener"
	"github.com/five82/snip/internal/ui"
)

// Options configure the snip application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/snip/prefs.toml
	Overrides  config.Overrides
	PrintOnly  bool   // resolve prints the target instead of opening a browser
	Version    string // reported in the User-Agent header
}

// Run boots the snip TUI until the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	// The terminal belongs to the UI, so logs only ever go to a file.
	logger := zap.NewNop()
	if cfg.LogFile != "" {
		logger, err = logging.New(cfg.LogLevel, cfg.LogFile)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
	}
	defer func() { _ = logger.Sync() }()

	client, err := newClient(cfg, opts, logger)
	if err != nil {
		return err
	}

	logger.Info("starting snip",
		zap.String("endpoint", client.Endpoint()),
		zap.String("short_domain", cfg.ShortDomain),
	)

	uiOpts := ui.Options{
		// In-flight requests outlive the program; late answers are dropped.
		Context:        context.WithoutCancel(ctx),
		Shortener:      client,
		Clipboard:      clipboard.System{},
		Logger:         logger,
		ShortDomain:    cfg.ShortDomain,
		NoticeDuration: cfg.NoticeDuration(),
		ThemeName:      userPrefs.Theme,
		PrefsPath:      opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

// newClient builds the shortening client. Extra options follow the defaults.
func newClient(cfg config.Config, opts Options, logger *zap.Logger, extra ...shortener.Option) (*shortener.Client, error) {
	clientOpts := []shortener.Option{shortener.WithLogger(logger)}
	if opts.Version != "" {
		clientOpts = append(clientOpts, shortener.WithUserAgent(UserAgent(opts.Version)))
	}
	clientOpts = append(clientOpts, extra...)

	client, err := shortener.NewClient(cfg.Endpoint, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("init shortener client: %w", err)
	}
	return client, nil
}

// UserAgent is the User-Agent snip sends for version.
func UserAgent(version string) string {
	return "snip/" + version
}

func loadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg, err = cfg.With(opts.Overrides)
	if err != nil {
		return config.Config{}, fmt.Errorf("apply flags: %w", err)
	}
	return cfg, nil
}
