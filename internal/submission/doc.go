// Package submission implements the "shorten this URL" session as a pure
// state machine.
//
// # Overview
//
// A session moves through four phases:
//
//	Editing ──submit (valid)──> Submitting ──token──> Succeeded ──reset──> Editing
//	   ^                            │
//	   └──────edit input──── Failed <┘ error
//
// Reduce is the only way to change a State. It never performs I/O. Work such as
// the network call, the clipboard write, or the notice timer is returned as an
// Effect for the caller to run, and its outcome comes back as another Event.
//
// # Invariants
//
//   - The result view is shown iff Phase == PhaseSucceeded (State.ShowsResult).
//   - At most one submission is in flight. SubmitRequested while Submitting is ignored.
//   - Completions carry the sequence number of the submission that produced
//     them. Anything else is stale and dropped.
//   - InputError is cleared on every InputChanged.
//   - Input is frozen while a submission is in flight.
//   - A notice is cleared only by an explicit dismissal or by the timer raised
//     with it. An older timer never clears a newer notice.
//
// # Error Taxonomy
//
//   - ErrInvalidURL: local and synchronous. Rendered beneath the input.
//   - KindSubmission: the backend's {"error": "..."} message, shown verbatim.
//   - KindTransport: no usable response. Shown as MessageUnexpected.
//   - Clipboard failures: MessageCopyFailed. They never touch Phase or Result.
package submission
