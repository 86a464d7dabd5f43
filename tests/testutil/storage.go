package testutil

import (
	"context"
	"testing"

	"github.com/mcarden/taskdesk/internal/app"
	"github.com/mcarden/taskdesk/internal/config"
	"github.com/mcarden/taskdesk/internal/logging"
	"github.com/mcarden/taskdesk/internal/storage"
)

// NewTestStorage creates an in-memory SQLite storage with all migrations
// applied. It automatically closes the storage when the test completes.
func NewTestStorage(t *testing.T) *storage.SQLiteStorage {
	t.Helper()

	s, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("creating test storage: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test storage: %v", err)
		}
	})

	return s
}

// NewTestEnv builds an application environment over in-memory storage.
func NewTestEnv(t *testing.T) *app.Env {
	t.Helper()

	st := NewTestStorage(t)
	cfg := &config.AppConfig{
		Storage: config.StorageConfig{Backend: config.BackendSQLite, Path: ":memory:"},
	}

	env, err := app.New(context.Background(), cfg, st, logging.Discard())
	if err != nil {
		t.Fatalf("building test env: %v", err)
	}
	return env
}
