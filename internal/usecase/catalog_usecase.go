package usecase

import (
	"context"

	"rapmaster/internal/domain/entity"
)

// CatalogUsecase exposes the read-only job board and shop listings.
type CatalogUsecase interface {
	ListJobs(ctx context.Context, category string) ([]*entity.Job, error)
	ListShopItems(ctx context.Context, category string) ([]*entity.ShopItem, error)
}
