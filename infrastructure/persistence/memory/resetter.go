package memory

import (
	"context"

	"go.uber.org/zap"

	"medialib-backend/domain/changes"
)

// FixtureResetter reloads the fixture file into the store and clears the
// change log. It is the explicit reset collaborator the dev harness uses;
// production wiring never mounts it.
type FixtureResetter struct {
	path      string
	store     *Store
	changeLog *changes.Log
	logger    *zap.Logger
}

// NewFixtureResetter creates a resetter for the given fixture path
func NewFixtureResetter(path string, store *Store, changeLog *changes.Log, logger *zap.Logger) *FixtureResetter {
	return &FixtureResetter{path: path, store: store, changeLog: changeLog, logger: logger}
}

// Reset restores the store and change log to the fixture state
func (r *FixtureResetter) Reset(_ context.Context) error {
	fixtures, err := LoadFixtures(r.path)
	if err != nil {
		return err
	}

	r.store.Reset(fixtures)
	r.changeLog.Reset()
	r.logger.Info("store reset to fixture state", zap.String("path", r.path))
	return nil
}
