// Package ui provides the terminal interface for snip.
//
// The UI is a Bubble Tea program with two views: the input form and the
// result view. Which one is shown is decided by submission.State alone; the
// Model forwards key presses to the submission reducer and turns the effects
// it returns into commands:
//
//   - SubmitEffect runs Shortener.Shorten off the UI goroutine
//   - CopyEffect writes to the clipboard
//   - DismissAfter schedules the notice timer
//
// # Key Bindings
//
//   - enter: Shorten the URL (form view)
//   - c/y: Copy the short URL (result view)
//   - n/enter: Shorten another URL (result view)
//   - q: Quit (result view)
//   - esc: Close the current notice
//   - ctrl+t: Toggle dark/light theme
//   - ctrl+c: Quit
//
// Mouse events never close a notice.
package ui
