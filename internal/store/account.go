// Package store implements the three application stores: accounts, folders,
// and tasks. Each store owns one slice of the persisted state and writes its
// full collection back through the storage layer on every mutation.
package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mcarden/taskdesk/internal/logging"
	"github.com/mcarden/taskdesk/internal/model"
	"github.com/mcarden/taskdesk/internal/storage"
)

// AccountStore manages registered users and the current session.
type AccountStore struct {
	storage storage.Storage
	log     logging.Logger
	users   []model.User
	current *model.User
}

// NewAccountStore loads the user list and any persisted session. A restored
// session is not re-validated against the user list: a user removed from
// storage out-of-band leaves a ghost session behind.
func NewAccountStore(ctx context.Context, st storage.Storage, log logging.Logger) (*AccountStore, error) {
	s := &AccountStore{storage: st, log: log}

	if _, err := st.Load(ctx, storage.KeyUsers, &s.users); err != nil {
		return nil, fmt.Errorf("loading users: %w", err)
	}

	var current model.User
	ok, err := st.Load(ctx, storage.KeyCurrentUser, &current)
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	if ok {
		s.current = &current
	}

	return s, nil
}

// Register adds a new user and signs them in. It fails with ErrEmailTaken if
// any existing user's email matches exactly.
func (s *AccountStore) Register(ctx context.Context, candidate model.User) error {
	for _, u := range s.users {
		if u.Email == candidate.Email {
			return ErrEmailTaken
		}
	}

	if candidate.ID == "" {
		candidate.ID = uuid.New().String()
	}

	s.users = append(s.users, candidate)
	if err := s.storage.Save(ctx, storage.KeyUsers, s.users); err != nil {
		return fmt.Errorf("saving users: %w", err)
	}

	// Auto login after register.
	s.current = &candidate
	if err := s.storage.Save(ctx, storage.KeyCurrentUser, candidate); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	s.log.Info(ctx, "user registered", "email", candidate.Email)
	return nil
}

// Login starts a session for the user whose email and password both match
// exactly. It never mutates the user list.
func (s *AccountStore) Login(ctx context.Context, email, password string) error {
	for _, u := range s.users {
		if u.Email == email && u.Password == password {
			found := u
			s.current = &found
			if err := s.storage.Save(ctx, storage.KeyCurrentUser, found); err != nil {
				return fmt.Errorf("saving session: %w", err)
			}
			s.log.Info(ctx, "user logged in", "email", email)
			return nil
		}
	}
	return ErrInvalidCredentials
}

// Logout clears the session and its persisted record. Logging out without a
// session is a no-op.
func (s *AccountStore) Logout(ctx context.Context) error {
	s.current = nil
	if err := s.storage.Delete(ctx, storage.KeyCurrentUser); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}

// Current returns a copy of the logged-in user, or nil if no session exists.
func (s *AccountStore) Current() *model.User {
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

// Users returns a copy of the registered user list.
func (s *AccountStore) Users() []model.User {
	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out
}
