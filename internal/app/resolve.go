package app

import (
	"fmt"
	"io"

	"github.com/pkg/browser"
	"go.uber.org/zap"

	"github.com/five82/snip/internal/logging"
	"github.com/five82/snip/internal/redirect"
)

// BrowserNavigator opens targets in the default web browser. Failures are
// logged and otherwise ignored.
type BrowserNavigator struct {
	Logger *zap.Logger
}

// Ensure BrowserNavigator implements redirect.Navigator at compile time.
var _ redirect.Navigator = BrowserNavigator{}

// Navigate opens target.
func (b BrowserNavigator) Navigate(target string) {
	if err := browser.OpenURL(target); err != nil && b.Logger != nil {
		b.Logger.Warn("open browser failed", zap.String("target", target), zap.Error(err))
	}
}

// Resolve hands token to the backend's resolution endpoint and writes the
// target address to out. The browser is skipped when opts.PrintOnly is set.
func Resolve(opts Options, token string, out io.Writer) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	r, err := redirect.New(cfg.ResolveBase)
	if err != nil {
		return fmt.Errorf("init redirector: %w", err)
	}

	var nav redirect.Navigator = redirect.NavigatorFunc(func(string) {})
	if !opts.PrintOnly {
		logger, err := logging.New(cfg.LogLevel, "")
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()
		nav = BrowserNavigator{Logger: logger}
	}

	_, err = fmt.Fprintln(out, r.Resolve(token, nav))
	return err
}
