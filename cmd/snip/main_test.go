package main

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	t.Run("no command runs the ui", func(t *testing.T) {
		cmd, err := parseArgs(nil, io.Discard)
		require.NoError(t, err)
		assert.Empty(t, cmd.name)
	})

	t.Run("shorten with flags after the command", func(t *testing.T) {
		cmd, err := parseArgs([]string{"shorten", "https://example.com", "--endpoint", "http://localhost:9000"}, io.Discard)
		require.NoError(t, err)
		assert.Equal(t, "shorten", cmd.name)
		assert.Equal(t, "https://example.com", cmd.arg)
		assert.Equal(t, "http://localhost:9000", cmd.opts.Overrides.Endpoint)
		assert.Equal(t, version, cmd.opts.Version)
	})

	t.Run("shorten timeout", func(t *testing.T) {
		cmd, err := parseArgs([]string{"--timeout", "3", "shorten", "https://example.com"}, io.Discard)
		require.NoError(t, err)
		assert.Equal(t, 3, cmd.opts.Overrides.TimeoutSeconds)
	})

	t.Run("resolve print only", func(t *testing.T) {
		cmd, err := parseArgs([]string{"--print", "resolve", "xyz"}, io.Discard)
		require.NoError(t, err)
		assert.Equal(t, "resolve", cmd.name)
		assert.Equal(t, "xyz", cmd.arg)
		assert.True(t, cmd.opts.PrintOnly)
	})

	t.Run("missing argument", func(t *testing.T) {
		_, err := parseArgs([]string{"resolve"}, io.Discard)
		assert.Error(t, err)
	})

	t.Run("unknown command", func(t *testing.T) {
		_, err := parseArgs([]string{"expand", "x"}, io.Discard)
		assert.ErrorContains(t, err, "unknown command")
	})

	t.Run("help", func(t *testing.T) {
		_, err := parseArgs([]string{"--help"}, io.Discard)
		assert.ErrorIs(t, err, errHelp)
	})
}
