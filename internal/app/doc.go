// Package app is the composition root for the snip command.
//
// It loads configuration (file, SNIP_* environment, then flags), builds the
// shortening client and logger, and starts one of three front ends:
//
//   - Run: the interactive terminal UI
//   - Shorten: a single headless submission that prints the short URL
//   - Resolve: opens (or prints) the backend address for a token
//
// Shorten runs through the same submission state machine as the UI, so both
// report identical messages. Errors returned from Run are fatal startup
// errors; everything after startup is shown to the user as a notice.
package app
