package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBlueprintPath(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"long flag", []string{"-blueprint", "hello.hcl"}},
		{"short flag", []string{"-b", "hello.hcl"}},
		{"positional", []string{"hello.hcl"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			cfg, shouldExit, err := Parse(tc.args, &out)
			require.NoError(t, err)
			require.False(t, shouldExit)
			assert.Equal(t, "hello.hcl", cfg.BlueprintPath)
		})
	}
}

func TestParseDefaults(t *testing.T) {
	var out bytes.Buffer
	cfg, _, err := Parse([]string{"hello.hcl"}, &out)
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.Ticks)
	assert.InDelta(t, 1.0/60.0, cfg.Dt, 1e-9)
	assert.False(t, cfg.CheckOnly)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParseAllFlags(t *testing.T) {
	var out bytes.Buffer
	cfg, _, err := Parse([]string{
		"-blueprint", "game.hcl",
		"-ticks", "10",
		"-dt", "0.033",
		"-check",
		"-log-format", "json",
		"-log-level", "debug",
	}, &out)
	require.NoError(t, err)

	assert.Equal(t, "game.hcl", cfg.BlueprintPath)
	assert.Equal(t, 10, cfg.Ticks)
	assert.InDelta(t, 0.033, cfg.Dt, 1e-9)
	assert.True(t, cfg.CheckOnly)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseNoArgsShowsUsage(t *testing.T) {
	var out bytes.Buffer
	cfg, shouldExit, err := Parse(nil, &out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage")
}

func TestParseHelp(t *testing.T) {
	var out bytes.Buffer
	cfg, shouldExit, err := Parse([]string{"-h"}, &out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
}

func TestParseRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"bad log format", []string{"-log-format", "xml", "hello.hcl"}},
		{"bad log level", []string{"-log-level", "loud", "hello.hcl"}},
		{"negative ticks", []string{"-ticks", "-1", "hello.hcl"}},
		{"unknown flag", []string{"-frobnicate", "hello.hcl"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			_, _, err := Parse(tc.args, &out)
			require.Error(t, err)

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
		})
	}
}
