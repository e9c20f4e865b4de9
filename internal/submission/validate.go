package submission

import (
	"errors"
	"net/url"
)

// InvalidURLMessage is shown beneath the input when validation fails.
const InvalidURLMessage = "Please enter valid URL. Example: https://example.com"

// ErrInvalidURL reports input that is not an absolute http or https URL.
var ErrInvalidURL = errors.New(InvalidURLMessage)

// Validate checks that raw parses as an absolute URL with an http or https
// scheme and a host. It never contacts the target.
func Validate(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() {
		return ErrInvalidURL
	}
	switch u.Scheme {
	case "http", "https":
	default:
		return ErrInvalidURL
	}
	if u.Host == "" {
		return ErrInvalidURL
	}
	return nil
}
