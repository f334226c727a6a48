package memory

import (
	"context"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"medialib-backend/application/ports"
)

// FixtureWatcher reloads the store whenever the fixture file changes on disk.
// Development convenience only; it is not started in production.
type FixtureWatcher struct {
	path     string
	resetter ports.StoreResetter
	logger   *zap.Logger
}

// NewFixtureWatcher creates a watcher for the given fixture path
func NewFixtureWatcher(path string, resetter ports.StoreResetter, logger *zap.Logger) *FixtureWatcher {
	return &FixtureWatcher{path: path, resetter: resetter, logger: logger}
}

// Run watches the fixture file until the context is cancelled. Blocks; run it
// in its own goroutine.
func (w *FixtureWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(w.path); err != nil {
		return err
	}
	w.logger.Info("watching fixture file", zap.String("path", w.path))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := w.resetter.Reset(ctx); err != nil {
				w.logger.Error("fixture reload failed", zap.Error(err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("fixture watcher error", zap.Error(err))
		}
	}
}
