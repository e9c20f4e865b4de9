package submission

import (
	"errors"

	"github.com/five82/snip/internal/shortener"
)

// Fixed notice messages.
const (
	MessageShortened  = "Token generated successfully."
	MessageUnexpected = "Something unexpected happened. Please try again later"
	MessageCopied     = "URL copied to clipboard"
	MessageCopyFailed = "Failed to copy URL"
)

// Event is an input to Reduce.
type Event interface {
	isEvent()
}

// InputChanged carries the new contents of the URL input.
type InputChanged struct{ Value string }

// SubmitRequested asks to validate and send the current input.
type SubmitRequested struct{}

// SubmissionSucceeded completes submission Seq with a backend token.
type SubmissionSucceeded struct {
	Seq   uint64
	Token string
}

// SubmissionFailed completes submission Seq with an error.
type SubmissionFailed struct {
	Seq uint64
	Err error
}

// ResetRequested discards the result and returns to the input form.
type ResetRequested struct{}

// CopyRequested asks to copy the current result.
type CopyRequested struct{}

// CopySucceeded reports a clipboard write.
type CopySucceeded struct{}

// CopyFailed reports a failed clipboard write.
type CopyFailed struct{ Err error }

// NoticeDismissed is an explicit close of notice ID.
type NoticeDismissed struct{ ID uint64 }

// NoticeExpired is the auto-dismiss timer for notice ID.
type NoticeExpired struct{ ID uint64 }

func (InputChanged) isEvent()        {}
func (SubmitRequested) isEvent()     {}
func (SubmissionSucceeded) isEvent() {}
func (SubmissionFailed) isEvent()    {}
func (ResetRequested) isEvent()      {}
func (CopyRequested) isEvent()       {}
func (CopySucceeded) isEvent()       {}
func (CopyFailed) isEvent()          {}
func (NoticeDismissed) isEvent()     {}
func (NoticeExpired) isEvent()       {}

// Effect is work the caller must perform after a transition. A nil Effect
// means nothing to do.
type Effect interface {
	isEffect()
}

// SubmitEffect sends URL to the backend and reports back with Seq.
type SubmitEffect struct {
	Seq uint64
	URL string
}

// CopyEffect writes Text to the clipboard.
type CopyEffect struct{ Text string }

// DismissAfter schedules NoticeExpired for NoticeID.
type DismissAfter struct{ NoticeID uint64 }

func (SubmitEffect) isEffect() {}
func (CopyEffect) isEffect()   {}
func (DismissAfter) isEffect() {}

// Reduce applies ev to s. It is pure: all I/O is described by the returned
// Effect.
func Reduce(s State, ev Event) (State, Effect) {
	switch ev := ev.(type) {
	case InputChanged:
		// The submitted URL is frozen until the request completes.
		if s.Phase == PhaseSubmitting || s.Phase == PhaseSucceeded {
			return s, nil
		}
		s.Input = ev.Value
		s.InputError = ""
		if s.Phase == PhaseFailed {
			s.Phase = PhaseEditing
			s.Failure = Failure{}
		}
		return s, nil

	case SubmitRequested:
		if s.Phase == PhaseSubmitting || s.Phase == PhaseSucceeded {
			return s, nil
		}
		if err := Validate(s.Input); err != nil {
			s.InputError = err.Error()
			return s, nil
		}
		s.InputError = ""
		s.Failure = Failure{}
		s.Phase = PhaseSubmitting
		s.seq++
		return s, SubmitEffect{Seq: s.seq, URL: s.Input}

	case SubmissionSucceeded:
		if !s.awaiting(ev.Seq) {
			return s, nil
		}
		s.Phase = PhaseSucceeded
		s.Result = NewShortURL(s.prefix, ev.Token)
		s.Input = ""
		return s.raise(SeveritySuccess, MessageShortened)

	case SubmissionFailed:
		if !s.awaiting(ev.Seq) {
			return s, nil
		}
		s.Phase = PhaseFailed
		s.Failure = Classify(ev.Err)
		return s.raise(SeverityError, s.Failure.Message)

	case ResetRequested:
		if s.Phase != PhaseSucceeded {
			return s, nil
		}
		s.Phase = PhaseEditing
		s.Result = ShortURL{}
		s.Input = ""
		s.InputError = ""
		return s, nil

	case CopyRequested:
		if s.Phase != PhaseSucceeded {
			return s, nil
		}
		return s, CopyEffect{Text: s.Result.Value}

	case CopySucceeded:
		return s.raise(SeveritySuccess, MessageCopied)

	case CopyFailed:
		return s.raise(SeverityError, MessageCopyFailed)

	case NoticeDismissed:
		return s.clearNotice(ev.ID), nil

	case NoticeExpired:
		return s.clearNotice(ev.ID), nil
	}
	return s, nil
}

// Classify maps a submission error onto the user-facing failure. Only a
// structured backend message is shown verbatim.
func Classify(err error) Failure {
	var apiErr *shortener.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return Failure{Kind: KindSubmission, Message: apiErr.Message}
	}
	return Failure{Kind: KindTransport, Message: MessageUnexpected}
}

func (s State) awaiting(seq uint64) bool {
	return s.Phase == PhaseSubmitting && seq == s.seq
}

func (s State) raise(sev Severity, msg string) (State, Effect) {
	s.noticeSeq++
	s.Notice = &Notice{ID: s.noticeSeq, Severity: sev, Message: msg}
	return s, DismissAfter{NoticeID: s.noticeSeq}
}

func (s State) clearNotice(id uint64) State {
	if s.Notice != nil && s.Notice.ID == id {
		s.Notice = nil
	}
	return s
}
