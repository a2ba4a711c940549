// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"rapmaster/internal/delivery/http/response"
	domainerrors "rapmaster/internal/domain/errors"
	"rapmaster/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GameHandler holds dependencies for career progression handlers.
type GameHandler struct {
	uc     usecase.GameUsecase
	logger *slog.Logger
}

// NewGameHandler is the constructor for GameHandler, injected by Fx.
func NewGameHandler(uc usecase.GameUsecase, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		uc:     uc,
		logger: logger,
	}
}

func parseUserID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return uuid.Nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("userId must be a valid uuid"))
	}

	return id, nil
}

// CreateProfile handles the character creation request.
func (h *GameHandler) CreateProfile(c echo.Context) error {
	var input *usecase.CreateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.uc.CreateProfile(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, profile, "Profile created successfully")
}

// GetProfile returns the career snapshot for a user.
func (h *GameHandler) GetProfile(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "")
}

// UpdateProfile applies a partial profile update.
func (h *GameHandler) UpdateProfile(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	var input *usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile patch")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.uc.UpdateProfile(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile updated successfully")
}

// GetStats returns aggregated career totals.
func (h *GameHandler) GetStats(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	stats, err := h.uc.GetStats(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}

// Work handles a job shift request.
func (h *GameHandler) Work(c echo.Context) error {
	var input *usecase.WorkInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid work input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.uc.Work(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Shift completed")
}

// CreateTrack handles recording a new track.
func (h *GameHandler) CreateTrack(c echo.Context) error {
	var input *usecase.CreateTrackInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid track input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.uc.CreateTrack(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Track recorded")
}

// ReleaseTrack handles publishing a track.
func (h *GameHandler) ReleaseTrack(c echo.Context) error {
	var input *usecase.ReleaseTrackInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid release input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.uc.ReleaseTrack(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Track released")
}

// CreateMusicVideo handles shooting a music video.
func (h *GameHandler) CreateMusicVideo(c echo.Context) error {
	var input *usecase.CreateMusicVideoInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid music video input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.uc.CreateMusicVideo(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Music video created")
}

// UpgradeSkill handles a skill upgrade.
func (h *GameHandler) UpgradeSkill(c echo.Context) error {
	var input *usecase.UpgradeSkillInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid skill input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.uc.UpgradeSkill(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Skill upgraded")
}

// AdvanceWeek moves the career calendar forward.
func (h *GameHandler) AdvanceWeek(c echo.Context) error {
	var input *usecase.AdvanceWeekInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid advance input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.uc.AdvanceWeek(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Week advanced")
}

// CreateSocialPost publishes a social post.
func (h *GameHandler) CreateSocialPost(c echo.Context) error {
	var input *usecase.CreateSocialPostInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.uc.CreateSocialPost(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Post published")
}

// PromoteTrack runs a promotion campaign.
func (h *GameHandler) PromoteTrack(c echo.Context) error {
	var input *usecase.PromoteTrackInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid promotion input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.uc.PromoteTrack(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Track promoted")
}

// BuyItem purchases a shop item.
func (h *GameHandler) BuyItem(c echo.Context) error {
	var input *usecase.BuyItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid purchase input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.uc.BuyItem(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Item purchased")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
