package config

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file whenever it changes on disk.
type Watcher struct {
	path string
	log  *slog.Logger
	fs   *fsnotify.Watcher
}

// NewWatcher starts watching path. The parent directory is watched rather
// than the file so that editors which save by renaming are still seen.
func NewWatcher(path string, log *slog.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Watcher{path: filepath.Clean(path), log: log, fs: fw}, nil
}

// Run passes every successfully reloaded config to onChange until ctx is
// done. Files that fail to load or validate are logged and skipped.
func (w *Watcher) Run(ctx context.Context, onChange func(*Config)) {
	defer w.fs.Close()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			cfg, err := Load(w.path)
			if err != nil {
				w.log.Warn("config reload failed", "path", w.path, "err", err)
				continue
			}
			w.log.Info("config reloaded", "path", w.path)
			onChange(cfg)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("config watcher error", "err", err)
		}
	}
}
