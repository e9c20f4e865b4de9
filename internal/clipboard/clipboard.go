// Package clipboard writes short URLs to the system clipboard.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available.
var ErrUnsupported = errors.New("clipboard unsupported on this system")

// Writer copies text to a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// System is the platform clipboard.
type System struct{}

// Ensure System implements Writer at compile time.
var _ Writer = System{}

// WriteAll copies text to the platform clipboard.
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}
