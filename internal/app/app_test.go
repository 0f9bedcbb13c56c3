package app

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/maze"
)

func newTestApp(t *testing.T, cfg Config) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	c, err := NewConfig(cfg)
	require.NoError(t, err)

	var out, logs bytes.Buffer
	return NewApp(&out, &logs, c), &out, &logs
}

func TestRun_WritesListing(t *testing.T) {
	a, out, logs := newTestApp(t, Config{Width: 2, Height: 1, Seed: 5})
	require.NoError(t, a.Run())

	assert.Equal(t, "[((0, 0), (1, 0))]\n", out.String())
	assert.Contains(t, logs.String(), "Maze built.")
	assert.Contains(t, logs.String(), "seed=5")
}

func TestRun_SingleCell(t *testing.T) {
	a, out, _ := newTestApp(t, Config{Width: 1, Height: 1, Seed: 1})
	require.NoError(t, a.Run())
	assert.Equal(t, "[]\n", out.String())
}

func TestRun_SeededMatchesLibrary(t *testing.T) {
	a, out, _ := newTestApp(t, Config{Width: 9, Height: 7, Seed: 77, Verify: true})
	require.NoError(t, a.Run())

	edges, err := maze.Build(9, 7, maze.WithSeed(77))
	require.NoError(t, err)
	assert.Equal(t, maze.Listing(edges)+"\n", out.String())
}

func TestRun_InvalidDimension(t *testing.T) {
	a, out, _ := newTestApp(t, Config{Width: 0, Height: 4, Seed: 1})
	err := a.Run()
	assert.ErrorIs(t, err, maze.ErrInvalidDimension)
	assert.Empty(t, out.String())
}

func TestRun_ZeroSeedUsesClock(t *testing.T) {
	a, out, logs := newTestApp(t, Config{Width: 4, Height: 4})
	fixed := time.Unix(0, 123456789)
	a.now = func() time.Time { return fixed }
	require.NoError(t, a.Run())

	edges, err := maze.Build(4, 4, maze.WithSeed(fixed.UnixNano()))
	require.NoError(t, err)
	assert.Equal(t, maze.Listing(edges)+"\n", out.String())
	assert.Contains(t, logs.String(), "seed=123456789")
}

func TestRun_JSONLogs(t *testing.T) {
	a, _, logs := newTestApp(t, Config{Width: 3, Height: 3, Seed: 2, LogFormat: "json", Verify: true})
	require.NoError(t, a.Run())

	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	require.NotEmpty(t, lines)
	for _, line := range lines {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec), "line %q", line)
		assert.Contains(t, rec, "msg")
	}
	assert.Contains(t, logs.String(), "Maze verified as a spanning tree.")
}

func TestRun_WarnLevelIsQuiet(t *testing.T) {
	a, _, logs := newTestApp(t, Config{Width: 3, Height: 2, Seed: 2, LogLevel: "warn"})
	require.NoError(t, a.Run())
	assert.Empty(t, logs.String())
}

func TestNewConfig_Rejects(t *testing.T) {
	_, err := NewConfig(Config{LogFormat: "xml", LogLevel: "info"})
	assert.Error(t, err)
	_, err = NewConfig(Config{LogFormat: "text", LogLevel: "loud"})
	assert.Error(t, err)
}
