package ui

import (
	"testing"

	"github.com/five82/snip/internal/prefs"
)

func TestGetTheme(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{prefs.ThemeDark, prefs.ThemeDark},
		{prefs.ThemeLight, prefs.ThemeLight},
		{"", prefs.ThemeDark},
		{"Dracula", prefs.ThemeDark},
	}
	for _, tc := range cases {
		if got := GetTheme(tc.in).Name; got != tc.want {
			t.Fatalf("GetTheme(%q).Name = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNextTheme_Alternates(t *testing.T) {
	if got := NextTheme(prefs.ThemeDark); got != prefs.ThemeLight {
		t.Fatalf("NextTheme(dark) = %q", got)
	}
	if got := NextTheme(prefs.ThemeLight); got != prefs.ThemeDark {
		t.Fatalf("NextTheme(light) = %q", got)
	}
}
