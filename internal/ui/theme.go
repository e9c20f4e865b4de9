package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/snip/internal/prefs"
)

// Theme defines colors for the UI.
type Theme struct {
	Name string

	Background string
	Surface    string
	Border     string
	Focus      string

	Text    string
	Muted   string
	Accent  string
	Success string
	Danger  string
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Logo       lipgloss.Style
	Label      lipgloss.Style
	MutedText  lipgloss.Style
	Field      lipgloss.Style
	FieldError lipgloss.Style
	ErrorText  lipgloss.Style
	Result     lipgloss.Style
	Panel      lipgloss.Style

	NoticeSuccess lipgloss.Style
	NoticeError   lipgloss.Style
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	field := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.Border)).
		Padding(0, 1)

	return Styles{
		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),
		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
		Field: field.BorderForeground(lipgloss.Color(t.Focus)),
		FieldError: field.
			BorderForeground(lipgloss.Color(t.Danger)),
		ErrorText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)),
		Result: field.
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),
		Panel: lipgloss.NewStyle().
			Padding(1, 2),

		NoticeSuccess: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Background)).
			Background(lipgloss.Color(t.Success)).
			Bold(true).
			Padding(0, 1),
		NoticeError: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Background)).
			Background(lipgloss.Color(t.Danger)).
			Bold(true).
			Padding(0, 1),
	}
}

// GetTheme returns a theme by name, defaulting to dark.
func GetTheme(name string) Theme {
	if name == prefs.ThemeLight {
		return lightTheme()
	}
	return darkTheme()
}

// NextTheme returns the other theme name.
func NextTheme(current string) string {
	if current == prefs.ThemeDark {
		return prefs.ThemeLight
	}
	return prefs.ThemeDark
}

func darkTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: prefs.ThemeDark,

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		Border:     "#39506d", // bg4
		Focus:      "#719cd6", // blue

		Text:    "#cdcecf", // fg1
		Muted:   "#738091", // comment
		Accent:  "#719cd6", // blue
		Success: "#81b29a", // green
		Danger:  "#c94f6d", // red
	}
}

func lightTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: prefs.ThemeLight,

		Background: "#f8fafc", // slate-50
		Surface:    "#f1f5f9", // slate-100
		Border:     "#cbd5e1", // slate-300
		Focus:      "#0284c7", // sky-600

		Text:    "#0f172a", // slate-900
		Muted:   "#64748b", // slate-500
		Accent:  "#0284c7", // sky-600
		Success: "#16a34a", // green-600
		Danger:  "#dc2626", // red-600
	}
}
