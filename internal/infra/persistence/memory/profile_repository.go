package memory

import (
	"context"

	"rapmaster/internal/domain/entity"
	"rapmaster/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileRepository implements repository.ProfileRepository on the Store.
type profileRepository struct {
	store *Store
}

// NewProfileRepository is the constructor for the in-memory profile repository.
func NewProfileRepository(store *Store) repository.ProfileRepository {
	return &profileRepository{store: store}
}

// Create assigns a fresh ID, stamps timestamps and stores a deep copy of
// the profile. A userId that already owns a profile is rejected rather
// than silently shadowed.
func (r *profileRepository) Create(_ context.Context, profile *entity.Profile) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if profile.UserID != uuid.Nil {
		if _, exists := s.profileByUser[profile.UserID]; exists {
			return errors.WithStack(repository.ErrDuplicateUserID)
		}
	}

	now := s.now()
	profile.ID = uuid.New()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	s.profiles[profile.ID] = profile.Clone()
	if profile.UserID != uuid.Nil {
		s.profileByUser[profile.UserID] = profile.ID
	}

	return nil
}

// FindByUserID returns a deep copy of the profile linked to the user.
func (r *profileRepository) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.Profile, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	profileID, ok := s.profileByUser[userID]
	if !ok {
		return nil, errors.WithStack(repository.ErrProfileNotFound)
	}

	return s.profiles[profileID].Clone(), nil
}

// Update replaces the stored record with a deep copy of the given
// profile and stamps a new update timestamp. The profile's ID must
// already exist; IDs never change after creation.
func (r *profileRepository) Update(_ context.Context, profile *entity.Profile) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.profiles[profile.ID]; !ok {
		return errors.WithStack(repository.ErrProfileNotFound)
	}

	profile.UpdatedAt = s.now()
	s.profiles[profile.ID] = profile.Clone()

	return nil
}
