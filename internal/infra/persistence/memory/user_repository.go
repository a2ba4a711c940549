package memory

import (
	"context"

	"rapmaster/internal/domain/entity"
	"rapmaster/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userRepository implements repository.UserRepository on the Store.
type userRepository struct {
	store *Store
}

// NewUserRepository is the constructor for the in-memory user repository.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

// FindByID retrieves a single user by their unique ID.
func (r *userRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, errors.WithStack(repository.ErrUserNotFound)
	}
	found := *user

	return &found, nil
}

// FindByUsername retrieves a single user by their username.
func (r *userRepository) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.userByName[username]
	if !ok {
		return nil, errors.WithStack(repository.ErrUserNotFound)
	}
	found := *s.users[id]

	return &found, nil
}

// Create assigns a fresh ID and stores the user. Usernames are unique.
func (r *userRepository) Create(_ context.Context, user *entity.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.userByName[user.Username]; exists {
		return errors.WithStack(repository.ErrDuplicateUsername)
	}

	user.ID = uuid.New()
	user.CreatedAt = s.now()

	stored := *user
	s.users[user.ID] = &stored
	s.userByName[user.Username] = user.ID

	return nil
}
