package redirect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NormalizesBase(t *testing.T) {
	r, err := New("  https://api.example.com/r//  ")
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/r", r.Base())
}

func TestNew_RejectsNonHTTPBase(t *testing.T) {
	for _, base := range []string{"", "api.example.com", "ftp://api.example.com", "https://"} {
		_, err := New(base)
		assert.Error(t, err, "base %q", base)
	}
}

func TestResolve_NavigatesOnceWithTokenUnchanged(t *testing.T) {
	r, err := New("https://api.example.com")
	require.NoError(t, err)

	cases := map[string]string{
		"plain":    "xyz",
		"empty":    "",
		"escaped":  "a%2Fb",
		"slash":    "a/b",
		"unicode":  "тест",
		"spaces":   " x y ",
		"dotdot":   "..",
		"question": "abc?x=1",
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			var calls []string
			nav := NavigatorFunc(func(target string) { calls = append(calls, target) })

			got := r.Resolve(token, nav)

			want := "https://api.example.com/" + token
			assert.Equal(t, want, got)
			assert.Equal(t, []string{want}, calls)
		})
	}
}
