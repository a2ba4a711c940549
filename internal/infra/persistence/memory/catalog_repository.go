package memory

import (
	"context"

	"rapmaster/internal/domain/entity"
	"rapmaster/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// catalogRepository implements repository.CatalogRepository on the Store.
// The catalogs are seeded once and never written, so reads only copy.
type catalogRepository struct {
	store *Store
}

// NewCatalogRepository is the constructor for the in-memory catalog repository.
func NewCatalogRepository(store *Store) repository.CatalogRepository {
	return &catalogRepository{store: store}
}

// ListJobs returns all active jobs.
func (r *catalogRepository) ListJobs(_ context.Context) ([]entity.Job, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	jobs := make([]entity.Job, 0, len(s.jobs))
	for _, job := range s.jobs {
		if job.IsActive {
			jobs = append(jobs, job)
		}
	}

	return jobs, nil
}

// ListJobsByCategory returns active jobs whose category matches exactly.
func (r *catalogRepository) ListJobsByCategory(_ context.Context, category string) ([]entity.Job, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	jobs := make([]entity.Job, 0)
	for _, job := range s.jobs {
		if job.IsActive && job.Category == category {
			jobs = append(jobs, job)
		}
	}

	return jobs, nil
}

// FindJob retrieves a single active job by ID.
func (r *catalogRepository) FindJob(_ context.Context, id uuid.UUID) (*entity.Job, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, job := range s.jobs {
		if job.ID == id && job.IsActive {
			found := job

			return &found, nil
		}
	}

	return nil, errors.WithStack(repository.ErrJobNotFound)
}

// ListShopItems returns the whole shop catalog.
func (r *catalogRepository) ListShopItems(_ context.Context) ([]entity.ShopItem, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entity.ShopItem, len(s.shopItems))
	copy(items, s.shopItems)

	return items, nil
}

// ListShopItemsByCategory returns shop items whose category matches exactly.
func (r *catalogRepository) ListShopItemsByCategory(_ context.Context, category string) ([]entity.ShopItem, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entity.ShopItem, 0)
	for _, item := range s.shopItems {
		if item.Category == category {
			items = append(items, item)
		}
	}

	return items, nil
}

// FindShopItem retrieves a single shop item by ID.
func (r *catalogRepository) FindShopItem(_ context.Context, id uuid.UUID) (*entity.ShopItem, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.shopItems {
		if item.ID == id {
			found := item

			return &found, nil
		}
	}

	return nil, errors.WithStack(repository.ErrItemNotFound)
}
