package config

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds everything snip and snip-relay need to reach the backend.
type Config struct {
	Endpoint      string `toml:"endpoint"       env:"ENDPOINT"`
	ShortDomain   string `toml:"short_domain"   env:"SHORT_DOMAIN"`
	ResolveBase   string `toml:"resolve_base"   env:"RESOLVE_BASE"`
	ListenAddr    string `toml:"listen_addr"    env:"LISTEN_ADDR"`
	LogLevel      string `toml:"log_level"      env:"LOG_LEVEL"`
	LogFile       string `toml:"log_file"       env:"LOG_FILE"`
	NoticeSeconds int    `toml:"notice_seconds" env:"NOTICE_SECONDS"`

	// TimeoutSeconds bounds headless shorten requests. The UI never times out.
	TimeoutSeconds int `toml:"timeout_seconds" env:"TIMEOUT_SECONDS"`
}

// Overrides are command-line values. Empty fields leave the config untouched.
type Overrides struct {
	Endpoint    string
	ShortDomain string
	ResolveBase string
	ListenAddr  string
	LogLevel    string
	LogFile     string

	TimeoutSeconds int
}

const (
	defaultConfigPath    = "~/.config/snip/config.toml"
	defaultEndpoint      = "http://127.0.0.1:8080"
	defaultShortDomain   = "http://127.0.0.1:8081/"
	defaultResolveBase   = "http://127.0.0.1:8080"
	defaultListenAddr    = "127.0.0.1:8081"
	defaultLogLevel      = "info"
	defaultLogFile       = "~/.local/state/snip/snip.log"
	defaultNoticeSeconds = 5
	defaultTimeout       = 10

	envPrefix = "SNIP_"
)

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Endpoint:      defaultEndpoint,
		ShortDomain:   defaultShortDomain,
		ResolveBase:   defaultResolveBase,
		ListenAddr:    defaultListenAddr,
		LogLevel:      defaultLogLevel,
		LogFile:       mustExpand(defaultLogFile),
		NoticeSeconds: defaultNoticeSeconds,

		TimeoutSeconds: defaultTimeout,
	}
}

// Load reads the TOML file at path (or the default path), applies SNIP_*
// environment overrides, and normalizes the result. A missing file is not an
// error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Defaults()

	file, err := os.Open(resolved)
	switch {
	case err == nil:
		defer file.Close()
		bytes, err := io.ReadAll(file)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		var raw Config
		if err := toml.Unmarshal(bytes, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
		cfg.merge(raw)
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("open config: %w", err)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	return cfg.normalize()
}

// With applies command-line overrides and re-normalizes.
func (c Config) With(o Overrides) (Config, error) {
	c.merge(Config{
		Endpoint:    o.Endpoint,
		ShortDomain: o.ShortDomain,
		ResolveBase: o.ResolveBase,
		ListenAddr:  o.ListenAddr,
		LogLevel:    o.LogLevel,
		LogFile:     o.LogFile,

		TimeoutSeconds: o.TimeoutSeconds,
	})
	return c.normalize()
}

// NoticeDuration is how long a notice stays up before it is auto-dismissed.
func (c Config) NoticeDuration() time.Duration {
	if c.NoticeSeconds <= 0 {
		return defaultNoticeSeconds * time.Second
	}
	return time.Duration(c.NoticeSeconds) * time.Second
}

// ShortenTimeout bounds a single headless shorten request.
func (c Config) ShortenTimeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultTimeout * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// merge copies every non-blank field of src over c.
func (c *Config) merge(src Config) {
	set := func(dst *string, v string) {
		if strings.TrimSpace(v) != "" {
			*dst = v
		}
	}
	set(&c.Endpoint, src.Endpoint)
	set(&c.ShortDomain, src.ShortDomain)
	set(&c.ResolveBase, src.ResolveBase)
	set(&c.ListenAddr, src.ListenAddr)
	set(&c.LogLevel, src.LogLevel)
	set(&c.LogFile, src.LogFile)
	if src.NoticeSeconds > 0 {
		c.NoticeSeconds = src.NoticeSeconds
	}
	if src.TimeoutSeconds > 0 {
		c.TimeoutSeconds = src.TimeoutSeconds
	}
}

func (c Config) normalize() (Config, error) {
	c.Endpoint = strings.TrimSpace(c.Endpoint)
	c.ListenAddr = strings.TrimSpace(c.ListenAddr)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))

	c.ShortDomain = strings.TrimSpace(c.ShortDomain)
	if !strings.HasSuffix(c.ShortDomain, "/") {
		c.ShortDomain += "/"
	}
	c.ResolveBase = strings.TrimRight(strings.TrimSpace(c.ResolveBase), "/")

	for _, field := range []struct{ name, value string }{
		{"endpoint", c.Endpoint},
		{"short_domain", c.ShortDomain},
		{"resolve_base", c.ResolveBase},
	} {
		if err := requireHTTPURL(field.value); err != nil {
			return Config{}, fmt.Errorf("%s: %w", field.name, err)
		}
	}

	if c.NoticeSeconds <= 0 {
		c.NoticeSeconds = defaultNoticeSeconds
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = defaultTimeout
	}
	if strings.TrimSpace(c.LogFile) != "" {
		c.LogFile = mustExpand(c.LogFile)
	}
	return c, nil
}

func requireHTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse %q: %w", raw, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%q is not an absolute http(s) URL", raw)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
