// Package config loads snip's configuration.
//
// # Resolution Order
//
// Later sources win:
//
//  1. Built-in defaults (Defaults)
//  2. TOML file, ~/.config/snip/config.toml unless a path is given
//  3. SNIP_* environment variables
//  4. Command-line flags, applied by the caller through Config.With
//
// A missing config file is not an error. Blank values in any layer are
// ignored rather than clearing the layer below.
//
// # TOML Format
//
//	endpoint       = "https://api.example.com"     # POST target for shortening
//	short_domain   = "https://sh.example/"         # prefix joined to returned tokens
//	resolve_base   = "https://api.example.com"     # base for token redirects
//	listen_addr    = "127.0.0.1:8081"              # snip-relay bind address
//	log_level      = "info"
//	log_file       = "~/.local/state/snip/snip.log"
//	notice_seconds = 5
//	timeout_seconds = 10                           # snip shorten only
//
// # Normalization
//
// short_domain gets a trailing slash if it lacks one, and tokens are
// concatenated to it verbatim. resolve_base loses any
// trailing slashes because the redirector adds its own separator. endpoint,
// short_domain and resolve_base must be absolute http(s) URLs.
//
// # Environment Variables
//
//	SNIP_ENDPOINT  SNIP_SHORT_DOMAIN  SNIP_RESOLVE_BASE  SNIP_LISTEN_ADDR
//	SNIP_LOG_LEVEL SNIP_LOG_FILE      SNIP_NOTICE_SECONDS
//	SNIP_TIMEOUT_SECONDS
package config
