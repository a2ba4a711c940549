// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"rapmaster/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is a domain-specific error returned when a profile is not found.
var ErrProfileNotFound = errors.New("profile not found")

// ErrDuplicateUserID is returned when a profile is created for a userId
// that already owns one. Lookup by userId is unique by construction.
var ErrDuplicateUserID = errors.New("profile already exists for user")

// ProfileRepository defines the standard operations for profile persistence.
// The application layer will depend on this interface, not the concrete implementation.
type ProfileRepository interface {
	// Create persists a new profile, assigning its ID and timestamps.
	Create(ctx context.Context, profile *entity.Profile) error

	// FindByUserID retrieves the profile linked to the given user ID.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// Update replaces the stored profile record and stamps UpdatedAt.
	Update(ctx context.Context, profile *entity.Profile) error
}
