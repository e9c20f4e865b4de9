package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/snip/internal/submission"
)

const logo = "snip"

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(m.renderHeader(styles))
	b.WriteString("\n\n")

	// Exactly one of the two views is rendered.
	if m.state.ShowsResult() {
		b.WriteString(m.renderResult(styles))
	} else {
		b.WriteString(m.renderForm(styles))
	}
	b.WriteString("\n\n")

	if notice := m.renderNotice(styles); notice != "" {
		b.WriteString(notice)
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderHelpBar())

	return styles.Panel.Render(b.String())
}

func (m Model) renderHeader(styles Styles) string {
	return lipgloss.JoinHorizontal(lipgloss.Bottom,
		styles.Logo.Render(logo),
		styles.MutedText.Render("  shorten a long URL"),
	)
}

func (m Model) renderForm(styles Styles) string {
	var b strings.Builder
	b.WriteString(styles.Label.Render("Long URL"))
	b.WriteString("\n")

	field := styles.Field
	if m.state.InputError != "" {
		field = styles.FieldError
	}
	b.WriteString(field.Render(m.input.View()))
	b.WriteString("\n")

	switch {
	case m.state.InputError != "":
		b.WriteString(styles.ErrorText.Render(m.state.InputError))
	case m.state.Pending():
		b.WriteString(m.spinner.View())
		b.WriteString(styles.MutedText.Render(" Shortening..."))
	default:
		b.WriteString(styles.MutedText.Render("Short links start with " + m.state.ShortDomain()))
	}

	return b.String()
}

func (m Model) renderResult(styles Styles) string {
	var b strings.Builder
	b.WriteString(styles.Label.Render("Short URL"))
	b.WriteString("\n")
	b.WriteString(styles.Result.Render(m.state.Result.Value))
	return b.String()
}

func (m Model) renderNotice(styles Styles) string {
	n := m.state.Notice
	if n == nil {
		return ""
	}
	if n.Severity == submission.SeverityError {
		return styles.NoticeError.Render(n.Message)
	}
	return styles.NoticeSuccess.Render(n.Message)
}

func (m Model) renderHelpBar() string {
	if m.state.ShowsResult() {
		return m.help.View(m.keys.resultHelp())
	}
	return m.help.View(m.keys.formHelp())
}
