// Package app wires configuration, storage, and the three stores together
// for the command layer.
package app

import (
	"context"
	"fmt"

	"github.com/mcarden/taskdesk/internal/config"
	"github.com/mcarden/taskdesk/internal/logging"
	"github.com/mcarden/taskdesk/internal/storage"
	"github.com/mcarden/taskdesk/internal/store"
)

// Env holds everything a command needs: the loaded configuration, a logger,
// the open storage backend, and the stores constructed over it.
type Env struct {
	Config   *config.AppConfig
	Log      logging.Logger
	Storage  storage.Storage
	Accounts *store.AccountStore
	Folders  *store.FolderStore
	Tasks    *store.TaskStore
}

// Open builds the storage backend selected by the configuration and loads
// all three stores from it.
func Open(ctx context.Context, cfg *config.AppConfig, log logging.Logger) (*Env, error) {
	var (
		st  storage.Storage
		err error
	)

	switch cfg.Storage.Backend {
	case config.BackendFile:
		st, err = storage.NewFileStorage(cfg.Storage.Path)
	default:
		st, err = storage.NewSQLiteStorage(cfg.Storage.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s storage: %w", cfg.Storage.Backend, err)
	}

	env, err := New(ctx, cfg, st, log)
	if err != nil {
		st.Close()
		return nil, err
	}
	return env, nil
}

// New constructs an Env over an already-open storage backend. Used directly
// by tests to inject an in-memory backend.
func New(ctx context.Context, cfg *config.AppConfig, st storage.Storage, log logging.Logger) (*Env, error) {
	accounts, err := store.NewAccountStore(ctx, st, log)
	if err != nil {
		return nil, fmt.Errorf("loading account store: %w", err)
	}
	folders, err := store.NewFolderStore(ctx, st, log)
	if err != nil {
		return nil, fmt.Errorf("loading folder store: %w", err)
	}
	tasks, err := store.NewTaskStore(ctx, st, log)
	if err != nil {
		return nil, fmt.Errorf("loading task store: %w", err)
	}

	log.Info(ctx, "storage opened", "backend", cfg.Storage.Backend, "path", cfg.Storage.Path)

	return &Env{
		Config:   cfg,
		Log:      log,
		Storage:  st,
		Accounts: accounts,
		Folders:  folders,
		Tasks:    tasks,
	}, nil
}

// Close releases the storage backend.
func (e *Env) Close() error {
	return e.Storage.Close()
}
