// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"rapmaster/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateProfileInput defines the data required to start a new career.
// UserID is optional; a fresh one is generated when absent.
type CreateProfileInput struct {
	UserID    uuid.UUID `json:"userId"`
	StageName string    `json:"stageName" validate:"required"`
	Avatar    int       `json:"avatar" validate:"min=1,max=8"`
	City      string    `json:"city" validate:"required"`
	Age       int       `json:"age" validate:"omitempty,min=16,max=60"`
}

// UpdateProfileInput carries a partial profile patch. Nil fields are left untouched.
type UpdateProfileInput struct {
	StageName  *string `json:"stageName"`
	Avatar     *int    `json:"avatar" validate:"omitempty,min=1,max=8"`
	City       *string `json:"city"`
	Money      *int    `json:"money"`
	Energy     *int    `json:"energy"`
	Fame       *int    `json:"fame"`
	Reputation *int    `json:"reputation"`
	Fans       *int    `json:"fans"`
}

// WorkInput identifies the job a player wants to work.
type WorkInput struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
	JobID  uuid.UUID `json:"jobId" validate:"required"`
}

// CreateTrackInput defines the data required to record a new track.
type CreateTrackInput struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
	Title  string    `json:"title" validate:"required"`
	Beat   string    `json:"beat" validate:"required"`
}

// ReleaseTrackInput identifies the unreleased track to publish.
type ReleaseTrackInput struct {
	UserID  uuid.UUID `json:"userId" validate:"required"`
	TrackID uuid.UUID `json:"trackId" validate:"required"`
}

// CreateMusicVideoInput defines the data required to shoot a music video.
type CreateMusicVideoInput struct {
	UserID  uuid.UUID `json:"userId" validate:"required"`
	TrackID uuid.UUID `json:"trackId" validate:"required"`
	Budget  int       `json:"budget" validate:"required"`
}

// UpgradeSkillInput identifies the skill to level up.
type UpgradeSkillInput struct {
	UserID uuid.UUID        `json:"userId" validate:"required"`
	Skill  entity.SkillName `json:"skill" validate:"required"`
}

// AdvanceWeekInput identifies the profile whose calendar advances.
type AdvanceWeekInput struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
}

// CreateSocialPostInput defines the data required to publish a social post.
type CreateSocialPostInput struct {
	UserID  uuid.UUID       `json:"userId" validate:"required"`
	Type    entity.PostType `json:"type" validate:"required"`
	Content string          `json:"content" validate:"required"`
	TrackID uuid.UUID       `json:"trackId"`
}

// PromoteTrackInput defines the data required to run a promotion campaign.
type PromoteTrackInput struct {
	UserID  uuid.UUID `json:"userId" validate:"required"`
	TrackID uuid.UUID `json:"trackId" validate:"required"`
	Budget  int       `json:"budget" validate:"required"`
}

// BuyItemInput identifies the shop item to purchase.
type BuyItemInput struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
	ItemID uuid.UUID `json:"itemId" validate:"required"`
}

// --- Output DTOs ---

// StatsOutput aggregates career totals across every track a player owns.
type StatsOutput struct {
	TotalTracks      int `json:"totalTracks"`
	ReleasedTracks   int `json:"releasedTracks"`
	TotalMusicVideos int `json:"totalMusicVideos"`
	TotalViews       int `json:"totalViews"`
	TotalStreams     int `json:"totalStreams"`
	TotalLikes       int `json:"totalLikes"`
	TotalEarnings    int `json:"totalEarnings"`
}

// GameUsecase defines the interface for career progression operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
// Every mutating operation returns the full post-action profile snapshot.
type GameUsecase interface {
	CreateProfile(ctx context.Context, input *CreateProfileInput) (*entity.Profile, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.Profile, error)
	GetStats(ctx context.Context, userID uuid.UUID) (*StatsOutput, error)

	Work(ctx context.Context, input *WorkInput) (*entity.Profile, error)
	CreateTrack(ctx context.Context, input *CreateTrackInput) (*entity.Profile, error)
	ReleaseTrack(ctx context.Context, input *ReleaseTrackInput) (*entity.Profile, error)
	CreateMusicVideo(ctx context.Context, input *CreateMusicVideoInput) (*entity.Profile, error)
	UpgradeSkill(ctx context.Context, input *UpgradeSkillInput) (*entity.Profile, error)
	AdvanceWeek(ctx context.Context, input *AdvanceWeekInput) (*entity.Profile, error)
	CreateSocialPost(ctx context.Context, input *CreateSocialPostInput) (*entity.Profile, error)
	PromoteTrack(ctx context.Context, input *PromoteTrackInput) (*entity.Profile, error)
	BuyItem(ctx context.Context, input *BuyItemInput) (*entity.Profile, error)
}
