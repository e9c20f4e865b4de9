package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/snip/internal/clipboard"
	"github.com/five82/snip/internal/prefs"
	"github.com/five82/snip/internal/shortener"
	"github.com/five82/snip/internal/submission"
)

const (
	defaultNoticeDuration = 5 * time.Second
	maxInputWidth         = 72
)

// Options configures the UI.
type Options struct {
	Context        context.Context
	Shortener      shortener.Shortener
	Clipboard      clipboard.Writer
	Logger         *zap.Logger
	ShortDomain    string
	NoticeDuration time.Duration
	ThemeName      string
	PrefsPath      string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx            context.Context
	shortener      shortener.Shortener
	clipboard      clipboard.Writer
	logger         *zap.Logger
	prefsPath      string
	noticeDuration time.Duration

	// Session
	state submission.State

	// UI state
	input   textinput.Model
	spinner spinner.Model
	help    help.Model
	keys    keyMap
	theme   Theme
	width   int
	height  int
	ready   bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.System{}
	}

	noticeDuration := opts.NoticeDuration
	if noticeDuration <= 0 {
		noticeDuration = defaultNoticeDuration
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	input := textinput.New()
	input.Placeholder = "https://example.com/a/very/long/path"
	input.Prompt = ""
	input.Width = maxInputWidth
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return Model{
		ctx:            ctx,
		shortener:      opts.Shortener,
		clipboard:      clip,
		logger:         logger,
		prefsPath:      prefsPath,
		noticeDuration: noticeDuration,
		state:          submission.New(opts.ShortDomain),
		input:          input,
		spinner:        spin,
		help:           help.New(),
		keys:           DefaultKeyMap(),
		theme:          GetTheme(opts.ThemeName),
	}
}

// State returns the current submission session.
func (m Model) State() submission.State {
	return m.state
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		// Notices close only on esc or their timer.
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = min(maxInputWidth, max(msg.Width-8, 10))
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case spinner.TickMsg:
		if !m.state.Pending() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case shortenedMsg:
		return m.dispatch(submission.SubmissionSucceeded{Seq: msg.seq, Token: msg.token})

	case shortenFailedMsg:
		m.logger.Warn("shorten request failed", zap.Uint64("seq", msg.seq), zap.Error(msg.err))
		return m.dispatch(submission.SubmissionFailed{Seq: msg.seq, Err: msg.err})

	case copiedMsg:
		if msg.err != nil {
			m.logger.Warn("copy to clipboard failed", zap.Error(msg.err))
			return m.dispatch(submission.CopyFailed{Err: msg.err})
		}
		return m.dispatch(submission.CopySucceeded{})

	case noticeExpiredMsg:
		return m.dispatch(submission.NoticeExpired{ID: msg.id})
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.DismissNotice):
		if m.state.Notice == nil {
			return m, nil
		}
		return m.dispatch(submission.NoticeDismissed{ID: m.state.Notice.ID})

	case key.Matches(msg, m.keys.ToggleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
			m.logger.Warn("save prefs failed", zap.Error(err))
		}
		return m, nil
	}

	if m.state.ShowsResult() {
		return m.handleResultKey(msg)
	}
	return m.handleFormKey(msg)
}

func (m Model) handleResultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Copy):
		return m.dispatch(submission.CopyRequested{})
	case key.Matches(msg, m.keys.Another):
		return m.dispatch(submission.ResetRequested{})
	case key.Matches(msg, m.keys.QuitResult):
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Submit) {
		return m.dispatch(submission.SubmitRequested{})
	}
	if m.state.Pending() {
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return m, cmd
	}

	next, effectCmd := m.dispatch(submission.InputChanged{Value: m.input.Value()})
	return next, tea.Batch(cmd, effectCmd)
}

// dispatch runs ev through the reducer and turns the resulting effect into a
// command.
func (m Model) dispatch(ev submission.Event) (Model, tea.Cmd) {
	var effect submission.Effect
	m.state, effect = submission.Reduce(m.state, ev)
	if m.input.Value() != m.state.Input {
		m.input.SetValue(m.state.Input)
	}

	switch e := effect.(type) {
	case submission.SubmitEffect:
		return m, tea.Batch(m.spinner.Tick, shortenCmd(m.ctx, m.shortener, e))
	case submission.CopyEffect:
		return m, copyCmd(m.clipboard, e.Text)
	case submission.DismissAfter:
		return m, dismissAfterCmd(m.noticeDuration, e.NoticeID)
	}
	return m, nil
}

// Messages

type shortenedMsg struct {
	seq   uint64
	token string
}

type shortenFailedMsg struct {
	seq uint64
	err error
}

type copiedMsg struct{ err error }

type noticeExpiredMsg struct{ id uint64 }

// Commands

func shortenCmd(ctx context.Context, s shortener.Shortener, e submission.SubmitEffect) tea.Cmd {
	return func() tea.Msg {
		if s == nil {
			return shortenFailedMsg{seq: e.Seq, err: &shortener.TransportError{Err: shortener.ErrNoClient}}
		}
		token, err := s.Shorten(ctx, e.URL)
		if err != nil {
			return shortenFailedMsg{seq: e.Seq, err: err}
		}
		return shortenedMsg{seq: e.Seq, token: token}
	}
}

func copyCmd(w clipboard.Writer, text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: w.WriteAll(text)}
	}
}

func dismissAfterCmd(d time.Duration, id uint64) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return noticeExpiredMsg{id: id}
	})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
