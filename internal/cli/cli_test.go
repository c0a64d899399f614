package cli

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, exit, err := Parse([]string{"-log-level", "DEBUG", "-heatmap", "c6.png", "aa.top", "lipids.itp", "prot.itp"}, out)
	require.NoError(t, err)
	require.False(t, exit)
	require.Equal(t, &Config{
		HeatmapPath: "c6.png",
		LogLevel:    slog.LevelDebug,
		Program:     "martinigen",
		Atomistic:   "aa.top",
		Extra:       []string{"lipids.itp", "prot.itp"},
	}, cfg)

	cfg, _, err = Parse(nil, out)
	require.NoError(t, err)
	require.Empty(t, cfg.Atomistic)
	require.Empty(t, cfg.Extra)
	require.Equal(t, slog.LevelWarn, cfg.LogLevel)
}

func TestParseHelp(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, exit, err := Parse([]string{"-h"}, out)
	require.NoError(t, err)
	require.True(t, exit)
	require.Nil(t, cfg)
	require.Contains(t, out.String(), "Usage:")
}

func TestParseErrors(t *testing.T) {
	for _, args := range [][]string{
		{"-log-level", "loud"},
		{"-no-such-flag"},
		{"-sigma-epsilon", "aa.top"},
	} {
		_, _, err := Parse(args, &bytes.Buffer{})
		var exitErr *ExitError
		require.True(t, errors.As(err, &exitErr), "args %v", args)
		require.Equal(t, 2, exitErr.Code)
	}
}
