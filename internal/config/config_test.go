package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/taigrr/neonwire/pkg/theme"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestParse(t *testing.T) {
	c, err := Parse(strings.NewReader(`
effect: saturn
size: 90
palette: neon
mode: light
fps: 30
seed: 99
log:
  level: debug
  format: console
  file: /tmp/neonwire.log
`))
	require.NoError(t, err)
	assert.Equal(t, "saturn", c.Effect)
	assert.Equal(t, 90.0, c.Size)
	assert.Equal(t, "neon", c.Palette)
	assert.Equal(t, theme.Light, c.Mode)
	assert.Equal(t, 30, c.FPS)
	assert.Equal(t, uint64(99), c.Seed)
	assert.Equal(t, Log{Level: "debug", Format: "console", File: "/tmp/neonwire.log"}, c.Log)
	assert.Equal(t, "neon", c.Theme().Name)
}

func TestParseKeepsDefaults(t *testing.T) {
	c, err := Parse(strings.NewReader("effect: dna\n"))
	require.NoError(t, err)
	want := Default()
	want.Effect = "dna"
	assert.Equal(t, want, c)

	c, err = Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"fps zero", "fps: 0"},
		{"fps too high", "fps: 500"},
		{"negative size", "size: -1"},
		{"palette", "palette: mauve"},
		{"mode", "mode: sepia"},
		{"effect", "effect: teapot"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}

	_, err := Parse(strings.NewReader("colour: red"))
	assert.Error(t, err, "unknown keys are rejected")
	_, err = Parse(strings.NewReader("fps: [1"))
	assert.Error(t, err)
}

func TestParseAllowsNone(t *testing.T) {
	c, err := Parse(strings.NewReader("effect: none"))
	require.NoError(t, err)
	assert.Equal(t, "none", c.Effect)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	c, err := Load(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	path := filepath.Join(dir, "neonwire.yaml")
	require.NoError(t, os.WriteFile(path, []byte("effect: sea\nfps: 24\n"), 0o644))
	c, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sea", c.Effect)
	assert.Equal(t, 24, c.FPS)

	require.NoError(t, os.WriteFile(path, []byte("fps: -3\n"), 0o644))
	_, err = Load(path)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), path)
}

func TestWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "neonwire.yaml")
	require.NoError(t, os.WriteFile(path, []byte("effect: cube\n"), 0o644))

	var (
		mu   sync.Mutex
		seen []string
	)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, zap.NewNop(), func(c Config) {
			mu.Lock()
			seen = append(seen, c.Effect)
			mu.Unlock()
		})
	}()

	last := func() string {
		mu.Lock()
		defer mu.Unlock()
		if len(seen) == 0 {
			return ""
		}
		return seen[len(seen)-1]
	}

	// the watcher starts asynchronously, so keep rewriting until it notices
	assert.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("effect: dna\n"), 0o644)
		return last() == "dna"
	}, 5*time.Second, 50*time.Millisecond)

	// an invalid write is skipped, the next valid one lands
	require.NoError(t, os.WriteFile(path, []byte("fps: 0\n"), 0o644))
	assert.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("effect: sea\n"), 0o644)
		return last() == "sea"
	}, 5*time.Second, 50*time.Millisecond)

	// other files in the directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("effect: saturn\n"), 0o644))
	time.Sleep(100 * time.Millisecond)
	assert.NotEqual(t, "saturn", last())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "neonwire.yaml")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, zap.NewNop(), func(Config) {
			t.Error("no reload expected")
		})
	}()

	select {
	case err := <-done:
		t.Fatalf("Watch returned before cancel: %v", err)
	case <-time.After(100 * time.Millisecond):
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}
