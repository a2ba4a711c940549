package impl

import (
	"context"
	"log/slog"

	"rapmaster/internal/domain/entity"
	"rapmaster/internal/domain/repository"
	"rapmaster/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface over the seeded
// job board and shop listings.
type catalogService struct {
	catalog repository.CatalogRepository
	logger  *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	Catalog repository.CatalogRepository
	Logger  *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		catalog: params.Catalog,
		logger:  params.Logger,
	}
}

// ListJobs returns available jobs, optionally filtered by category.
func (srv *catalogService) ListJobs(ctx context.Context, category string) ([]*entity.Job, error) {
	var (
		jobs []entity.Job
		err  error
	)
	if category == "" {
		jobs, err = srv.catalog.ListJobs(ctx)
	} else {
		jobs, err = srv.catalog.ListJobsByCategory(ctx, category)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list jobs")
	}

	out := make([]*entity.Job, len(jobs))
	for i := range jobs {
		out[i] = &jobs[i]
	}

	return out, nil
}

// ListShopItems returns purchasable items, optionally filtered by category.
func (srv *catalogService) ListShopItems(ctx context.Context, category string) ([]*entity.ShopItem, error) {
	var (
		items []entity.ShopItem
		err   error
	)
	if category == "" {
		items, err = srv.catalog.ListShopItems(ctx)
	} else {
		items, err = srv.catalog.ListShopItemsByCategory(ctx, category)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shop items")
	}

	out := make([]*entity.ShopItem, len(items))
	for i := range items {
		out[i] = &items[i]
	}

	return out, nil
}
