package repository

import (
	"context"
	"errors"

	"rapmaster/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrJobNotFound is returned when a job lookup misses.
var ErrJobNotFound = errors.New("job not found")

// ErrItemNotFound is returned when a shop item lookup misses.
var ErrItemNotFound = errors.New("shop item not found")

// CatalogRepository provides read access to the static job and shop
// catalogs seeded at store initialization.
type CatalogRepository interface {
	// ListJobs returns all active jobs.
	ListJobs(ctx context.Context) ([]entity.Job, error)

	// ListJobsByCategory returns active jobs matching the category exactly.
	ListJobsByCategory(ctx context.Context, category string) ([]entity.Job, error)

	// FindJob retrieves a single active job by ID.
	FindJob(ctx context.Context, id uuid.UUID) (*entity.Job, error)

	// ListShopItems returns all shop items.
	ListShopItems(ctx context.Context) ([]entity.ShopItem, error)

	// ListShopItemsByCategory returns shop items matching the category exactly.
	ListShopItemsByCategory(ctx context.Context, category string) ([]entity.ShopItem, error)

	// FindShopItem retrieves a single shop item by ID.
	FindShopItem(ctx context.Context, id uuid.UUID) (*entity.ShopItem, error)
}
