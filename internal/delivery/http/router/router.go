// Package router contains routing setup for the HTTP delivery.
package router

import (
	"rapmaster/config"
	"rapmaster/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config         *config.Config
	GameHandler    *handler.GameHandler
	CatalogHandler *handler.CatalogHandler
	UserHandler    *handler.UserHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg            *config.Config
	gameHandler    *handler.GameHandler
	catalogHandler *handler.CatalogHandler
	userHandler    *handler.UserHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:            params.Config,
		gameHandler:    params.GameHandler,
		catalogHandler: params.CatalogHandler,
		userHandler:    params.UserHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	if r.cfg.Metrics != nil && r.cfg.Metrics.Enabled {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	// Auth routes
	authGroup := e.Group("/api/auth")
	{
		authGroup.POST("/register", r.userHandler.RegisterUser)
	}

	// Game routes
	gameGroup := e.Group("/api/game")
	{
		gameGroup.POST("/profile", r.gameHandler.CreateProfile)
		gameGroup.GET("/profile/:userId", r.gameHandler.GetProfile)
		gameGroup.PATCH("/profile/:userId", r.gameHandler.UpdateProfile)
		gameGroup.GET("/stats/:userId", r.gameHandler.GetStats)

		gameGroup.GET("/jobs", r.catalogHandler.ListJobs)
		gameGroup.GET("/jobs/:category", r.catalogHandler.ListJobs)
		gameGroup.GET("/shop", r.catalogHandler.ListShopItems)
		gameGroup.GET("/shop/:category", r.catalogHandler.ListShopItems)
		gameGroup.POST("/shop/buy", r.gameHandler.BuyItem)

		gameGroup.POST("/work", r.gameHandler.Work)
		gameGroup.POST("/track", r.gameHandler.CreateTrack)
		gameGroup.POST("/track/release", r.gameHandler.ReleaseTrack)
		gameGroup.POST("/music-video", r.gameHandler.CreateMusicVideo)
		gameGroup.POST("/skill/upgrade", r.gameHandler.UpgradeSkill)
		gameGroup.POST("/advance-week", r.gameHandler.AdvanceWeek)
		gameGroup.POST("/social/post", r.gameHandler.CreateSocialPost)
		gameGroup.POST("/social/promote", r.gameHandler.PromoteTrack)
	}
}
