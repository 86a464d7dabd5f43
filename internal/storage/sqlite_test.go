package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcarden/taskdesk/internal/model"
	"github.com/mcarden/taskdesk/internal/storage"
)

func newSQLite(t *testing.T) *storage.SQLiteStorage {
	t.Helper()
	s, err := storage.NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteLoadAbsentKey(t *testing.T) {
	s := newSQLite(t)

	var users []model.User
	ok, err := s.Load(context.Background(), storage.KeyUsers, &users)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, users)
}

func TestSQLiteRoundTrip(t *testing.T) {
	s := newSQLite(t)
	ctx := context.Background()

	in := []model.Folder{
		{ID: "1700000000000", Name: "Acme"},
		{ID: "1700000000001", Name: "Globex"},
	}
	require.NoError(t, s.Save(ctx, storage.KeyFolders, in))

	var out []model.Folder
	ok, err := s.Load(ctx, storage.KeyFolders, &out)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, in, out)
}

func TestSQLiteOverwrite(t *testing.T) {
	s := newSQLite(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, storage.KeyTasks, []model.Task{{ID: "a"}}))
	require.NoError(t, s.Save(ctx, storage.KeyTasks, []model.Task{{ID: "b"}, {ID: "c"}}))

	var out []model.Task
	ok, err := s.Load(ctx, storage.KeyTasks, &out)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, out, 2)
	assert.Equal(t, "b", out[0].ID)
}

func TestSQLiteDelete(t *testing.T) {
	s := newSQLite(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, storage.KeyCurrentUser, model.User{ID: "u1"}))
	require.NoError(t, s.Delete(ctx, storage.KeyCurrentUser))

	var u model.User
	ok, err := s.Load(ctx, storage.KeyCurrentUser, &u)
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting again is not an error.
	require.NoError(t, s.Delete(ctx, storage.KeyCurrentUser))
}

func TestSQLiteReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskdesk.db")
	ctx := context.Background()

	s, err := storage.NewSQLiteStorage(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, storage.KeyUsers, []model.User{{ID: "u1", Email: "a@x.com"}}))
	require.NoError(t, s.Close())

	// Reopening runs migrations again; they must be idempotent.
	s2, err := storage.NewSQLiteStorage(path)
	require.NoError(t, err)
	defer s2.Close()

	var users []model.User
	ok, err := s2.Load(ctx, storage.KeyUsers, &users)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, users, 1)
	assert.Equal(t, "a@x.com", users[0].Email)
}
