package handler

import (
	"log/slog"
	"net/http"

	"rapmaster/internal/delivery/http/response"
	"rapmaster/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler serves the job board and shop listings.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListJobs returns available jobs. The optional :category path param filters.
func (h *CatalogHandler) ListJobs(c echo.Context) error {
	jobs, err := h.uc.ListJobs(c.Request().Context(), c.Param("category"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, jobs, "")
}

// ListShopItems returns purchasable items. The optional :category path param filters.
func (h *CatalogHandler) ListShopItems(c echo.Context) error {
	items, err := h.uc.ListShopItems(c.Request().Context(), c.Param("category"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}
