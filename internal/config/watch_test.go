package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dots.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: classic\n"), 0644))

	w, err := NewWatcher(path, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *Config, 8)
	go w.Run(ctx, func(c *Config) { changes <- c })

	require.NoError(t, os.WriteFile(path, []byte("theme: ember\n"), 0644))

	// a rewrite can surface as several events, the first of which may see a
	// truncated file
	timeout := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-changes:
			if cfg.Theme == "ember" {
				return
			}
		case <-timeout:
			t.Fatal("no reload after write")
		}
	}
}

func TestWatcherSkipsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dots.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: classic\n"), 0644))

	w, err := NewWatcher(path, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *Config, 8)
	go w.Run(ctx, func(c *Config) { changes <- c })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("theme: mono\n"), 0644))
	tmp := filepath.Join(t.TempDir(), "invalid.yaml")
	require.NoError(t, os.WriteFile(tmp, []byte("target_tick_ms: -1\n"), 0644))
	require.NoError(t, os.Rename(tmp, path))

	select {
	case cfg := <-changes:
		t.Fatalf("unexpected reload: %+v", cfg)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestNewWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "nope", "dots.yaml"), nil)
	assert.Error(t, err)
}
