// Package redirect maps short tokens to the backend resolution address.
//
// The redirector is a transparent relay. It performs no lookup and no
// validation of the token, and it has no error path: the backend answers
// unknown tokens with its own not-found response.
package redirect

import (
	"fmt"
	"net/url"
	"strings"
)

// Navigator hands the client off to target. Implementations decide what
// navigation means: an HTTP redirect, opening a browser, printing.
type Navigator interface {
	Navigate(target string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(target string)

// Navigate calls f(target).
func (f NavigatorFunc) Navigate(target string) {
	f(target)
}

// Redirector builds resolution targets under a fixed base.
type Redirector struct {
	base string
}

// New returns a Redirector for base, which must be an absolute http(s) URL.
// Trailing slashes are dropped so targets always have exactly one separator.
func New(base string) (*Redirector, error) {
	trimmed := strings.TrimSpace(base)
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse resolve base %q: %w", base, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("resolve base %q must be an absolute http(s) URL", base)
	}
	return &Redirector{base: strings.TrimRight(trimmed, "/")}, nil
}

// Base returns the normalized resolution base.
func (r *Redirector) Base() string {
	return r.base
}

// Target returns base + "/" + token. The token is passed through unmodified.
func (r *Redirector) Target(token string) string {
	return r.base + "/" + token
}

// Resolve navigates to the target for token exactly once and returns it.
// The outcome is not inspected.
func (r *Redirector) Resolve(token string, nav Navigator) string {
	target := r.Target(token)
	nav.Navigate(target)
	return target
}
