package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/mcarden/taskdesk/internal/logging"
	"github.com/mcarden/taskdesk/internal/model"
	"github.com/mcarden/taskdesk/internal/storage"
)

// FolderStore manages the ordered folder list and the transient
// active-folder cursor. Folders can only be added; there is no update or
// remove operation.
type FolderStore struct {
	storage  storage.Storage
	log      logging.Logger
	folders  []model.Folder
	activeID string
}

// NewFolderStore loads the persisted folder list. The active-folder cursor
// always starts empty; it is never persisted.
func NewFolderStore(ctx context.Context, st storage.Storage, log logging.Logger) (*FolderStore, error) {
	s := &FolderStore{storage: st, log: log}
	if _, err := st.Load(ctx, storage.KeyFolders, &s.folders); err != nil {
		return nil, fmt.Errorf("loading folders: %w", err)
	}
	return s, nil
}

// AddFolder appends a folder with a timestamp-derived ID and persists the
// list. Name uniqueness is the caller's concern; two folders created within
// the same millisecond share an ID.
func (s *FolderStore) AddFolder(ctx context.Context, name string) (model.Folder, error) {
	folder := model.Folder{
		ID:   strconv.FormatInt(time.Now().UnixMilli(), 10),
		Name: name,
	}

	s.folders = append(s.folders, folder)
	if err := s.storage.Save(ctx, storage.KeyFolders, s.folders); err != nil {
		return model.Folder{}, fmt.Errorf("saving folders: %w", err)
	}
	return folder, nil
}

// Folders returns a copy of the folder list in creation order.
func (s *FolderStore) Folders() []model.Folder {
	out := make([]model.Folder, len(s.folders))
	copy(out, s.folders)
	return out
}

// FolderByID returns the folder with the given ID, or nil.
func (s *FolderStore) FolderByID(id string) *model.Folder {
	for _, f := range s.folders {
		if f.ID == id {
			found := f
			return &found
		}
	}
	return nil
}

// SetActive points the cursor at a folder ID. The ID is not validated
// against the folder list; callers set it explicitly.
func (s *FolderStore) SetActive(id string) {
	s.activeID = id
}

// Active returns the folder the cursor points at, or nil when the cursor is
// unset or dangling.
func (s *FolderStore) Active() *model.Folder {
	if s.activeID == "" {
		return nil
	}
	return s.FolderByID(s.activeID)
}
