package submission

// Phase is the presentation state of a submission session.
type Phase int

const (
	PhaseEditing Phase = iota
	PhaseSubmitting
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseEditing:
		return "editing"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ShortURL is a backend token joined to the short domain prefix.
type ShortURL struct {
	Token string
	Value string
}

// NewShortURL concatenates prefix and token without any normalization.
func NewShortURL(prefix, token string) ShortURL {
	return ShortURL{Token: token, Value: prefix + token}
}

// IsZero reports whether no result is held.
func (s ShortURL) IsZero() bool {
	return s.Value == ""
}

// FailureKind distinguishes a backend-reported error from a transport fallback.
type FailureKind int

const (
	KindNone FailureKind = iota
	KindSubmission
	KindTransport
)

// Failure describes why the last submission failed.
type Failure struct {
	Kind    FailureKind
	Message string
}

// Severity tags a notice.
type Severity int

const (
	SeveritySuccess Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "success"
}

// Notice is a transient message raised when an operation completes.
// IDs grow monotonically within a session.
type Notice struct {
	ID       uint64
	Severity Severity
	Message  string
}

// State is the whole submission session. Construct it with New and change it
// only through Reduce.
type State struct {
	Phase      Phase
	Input      string
	InputError string
	Result     ShortURL // set only in PhaseSucceeded
	Failure    Failure  // set only in PhaseFailed
	Notice     *Notice

	prefix    string
	seq       uint64
	noticeSeq uint64
}

// New returns an editing session whose results are prefixed with shortDomain.
func New(shortDomain string) State {
	return State{Phase: PhaseEditing, prefix: shortDomain}
}

// Pending reports whether a submission is in flight.
func (s State) Pending() bool {
	return s.Phase == PhaseSubmitting
}

// ShowsResult selects the result view over the input form.
func (s State) ShowsResult() bool {
	return s.Phase == PhaseSucceeded
}

// ShortDomain returns the prefix applied to tokens.
func (s State) ShortDomain() string {
	return s.prefix
}
