package file

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/ledgerline-labs/sheetfeed/internal/logger"
)

// Watcher invokes a callback when the config file changes on disk, so
// a running fetch loop can pick up configuration edits without a
// restart.
type Watcher struct {
	path     string
	onChange func()
	fsw      *fsnotify.Watcher
}

// NewWatcher creates a watcher over the given file. The parent directory
// is watched rather than the file itself so editors that replace the
// file (write temp, rename) keep triggering.
func NewWatcher(path string, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}
	return &Watcher{
		path:     path,
		onChange: onChange,
		fsw:      fsw,
	}, nil
}

// Watch blocks, invoking the callback on each write or create of the
// watched file, until the context is cancelled.
func (w *Watcher) Watch(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if ev.Name != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				logger.Debug("config file changed: %s", ev.Name)
				w.onChange()
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config watcher: %v", err)
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
