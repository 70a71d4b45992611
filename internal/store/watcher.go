package store

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads the store when the JSON documents change on disk, so edits
// made outside the process (hand edits, a second instance) show up without a
// restart. The store's own writes also trigger a reload; that reload reads
// back exactly what was written.
type Watcher struct {
	store   *Store
	watcher *fsnotify.Watcher
	logger  *zap.Logger
}

// Watch starts watching the store's data directory. Close stops it.
func Watch(s *Store, logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fw.Add(s.Dir()); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", s.Dir(), err)
	}

	w := &Watcher{store: s, watcher: fw, logger: logger}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			name := filepath.Base(event.Name)
			if name != RecipesFile && name != FavoritesFile {
				continue
			}
			w.logger.Debug("data file changed", zap.String("file", name))
			if err := w.store.Reload(); err != nil {
				w.logger.Warn("reload failed, keeping previous state",
					zap.String("file", name), zap.Error(err))
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", zap.Error(err))
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
