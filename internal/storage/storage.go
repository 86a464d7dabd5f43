// Package storage provides the key→JSON persistence layer backing the
// application stores. Each store serializes its full collection under a
// well-known key on every mutation; atomicity is per key, never across keys.
package storage

import "context"

// Well-known collection keys. The persisted layout is one JSON document
// per key.
const (
	KeyUsers         = "users"
	KeyCurrentUser   = "currentUser"
	KeyFolders       = "folders"
	KeyTasks         = "tasks"
	KeyArchivedTasks = "archivedTasks"
	KeyNotifications = "notifications"
)

// Storage is the repository abstraction the stores persist through.
// Implementations decide the medium (SQLite database, plain files).
type Storage interface {
	// Load unmarshals the value stored under key into v. It returns false
	// with a nil error if the key has never been written.
	Load(ctx context.Context, key string, v any) (bool, error)

	// Save marshals v and writes it under key, replacing any previous value.
	Save(ctx context.Context, key string, v any) error

	// Delete removes the value stored under key. Deleting an absent key is
	// not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}
