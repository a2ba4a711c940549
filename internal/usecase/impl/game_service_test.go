package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"rapmaster/internal/domain/entity"
	domainerrors "rapmaster/internal/domain/errors"
	"rapmaster/internal/domain/progression"
	"rapmaster/internal/domain/repository"
	"rapmaster/internal/infra/metrics"
	"rapmaster/internal/infra/persistence/memory"
	"rapmaster/internal/usecase"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gameServiceFixtures holds all test dependencies for game service tests.
type gameServiceFixtures struct {
	service usecase.GameUsecase
	catalog repository.CatalogRepository
}

func createTestGameService(t *testing.T) gameServiceFixtures {
	t.Helper()

	store := memory.NewStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewGameService(GameServiceParams{
		Profiles: memory.NewProfileRepository(store),
		Catalog:  memory.NewCatalogRepository(store),
		Engine:   progression.New(),
		Metrics:  metrics.New(prometheus.NewRegistry()),
		Logger:   logger,
	})

	return gameServiceFixtures{
		service: service,
		catalog: memory.NewCatalogRepository(store),
	}
}

func createTestCareer(t *testing.T, fx gameServiceFixtures) *entity.Profile {
	t.Helper()

	profile, err := fx.service.CreateProfile(context.Background(), &usecase.CreateProfileInput{
		StageName: "MC Test",
		Avatar:    2,
		City:      "Atlanta",
	})
	require.NoError(t, err)

	return profile
}

func findJobByTitle(t *testing.T, fx gameServiceFixtures, title string) *entity.Job {
	t.Helper()

	jobs, err := fx.catalog.ListJobs(context.Background())
	require.NoError(t, err)
	for i := range jobs {
		if jobs[i].Title == title {
			return &jobs[i]
		}
	}
	t.Fatalf("job %q not seeded", title)

	return nil
}

func findItemByName(t *testing.T, fx gameServiceFixtures, name string) *entity.ShopItem {
	t.Helper()

	items, err := fx.catalog.ListShopItems(context.Background())
	require.NoError(t, err)
	for i := range items {
		if items[i].Name == name {
			return &items[i]
		}
	}
	t.Fatalf("shop item %q not seeded", name)

	return nil
}

func TestGameService_CreateProfile_StartingStats(t *testing.T) {
	fx := createTestGameService(t)

	profile := createTestCareer(t, fx)

	assert.NotEqual(t, uuid.Nil, profile.ID)
	assert.NotEqual(t, uuid.Nil, profile.UserID)
	assert.Equal(t, "MC Test", profile.StageName)
	assert.Equal(t, 20, profile.Age)
	assert.Equal(t, 2020, profile.Year)
	assert.Equal(t, 100, profile.Money)
	assert.Equal(t, 50, profile.Energy)
	assert.Equal(t, 0, profile.Fame)
	assert.Equal(t, 100, profile.NetWorth)
	assert.Equal(t, entity.Skills{Rapping: 1, Production: 1, SocialMedia: 1, Performance: 1, Business: 1}, profile.Skills)
	assert.Empty(t, profile.Tracks)
	assert.Empty(t, profile.Inventory)
}

func TestGameService_CreateProfile_DuplicateUserID(t *testing.T) {
	fx := createTestGameService(t)
	ctx := context.Background()

	userID := uuid.New()
	input := &usecase.CreateProfileInput{UserID: userID, StageName: "First", Avatar: 1, City: "Houston"}
	_, err := fx.service.CreateProfile(ctx, input)
	require.NoError(t, err)

	_, err = fx.service.CreateProfile(ctx, &usecase.CreateProfileInput{UserID: userID, StageName: "Second", Avatar: 1, City: "Houston"})
	assert.ErrorIs(t, err, domainerrors.ErrProfileAlreadyExists)
}

func TestGameService_GetProfile_NotFound(t *testing.T) {
	fx := createTestGameService(t)

	_, err := fx.service.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestGameService_UpdateProfile_PartialMerge(t *testing.T) {
	fx := createTestGameService(t)
	ctx := context.Background()
	profile := createTestCareer(t, fx)

	newName := "MC Renamed"
	money := 5000
	updated, err := fx.service.UpdateProfile(ctx, profile.UserID, &usecase.UpdateProfileInput{
		StageName: &newName,
		Money:     &money,
	})
	require.NoError(t, err)

	assert.Equal(t, "MC Renamed", updated.StageName)
	assert.Equal(t, 5000, updated.Money)
	assert.Equal(t, 5000, updated.NetWorth)
	// Untouched fields survive the merge.
	assert.Equal(t, 50, updated.Energy)
	assert.Equal(t, "Atlanta", updated.City)
}

func TestGameService_Work_Success(t *testing.T) {
	fx := createTestGameService(t)
	ctx := context.Background()
	profile := createTestCareer(t, fx)
	job := findJobByTitle(t, fx, "Fast Food Worker")

	updated, err := fx.service.Work(ctx, &usecase.WorkInput{UserID: profile.UserID, JobID: job.ID})
	require.NoError(t, err)

	assert.Equal(t, 120, updated.Money)
	assert.Equal(t, 45, updated.Energy)
	assert.Equal(t, 0, updated.Fame)
	assert.Equal(t, 120, updated.NetWorth)
}

func TestGameService_Work_FameGate(t *testing.T) {
	fx := createTestGameService(t)
	ctx := context.Background()
	profile := createTestCareer(t, fx)
	job := findJobByTitle(t, fx, "Studio Assistant")

	_, err := fx.service.Work(ctx, &usecase.WorkInput{UserID: profile.UserID, JobID: job.ID})
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientFame)

	// Failed action leaves the stored profile untouched.
	stored, err := fx.service.GetProfile(ctx, profile.UserID)
	require.NoError(t, err)
	assert.Equal(t, 100, stored.Money)
	assert.Equal(t, 50, stored.Energy)
}

func TestGameService_Work_JobNotFound(t *testing.T) {
	fx := createTestGameService(t)
	profile := createTestCareer(t, fx)

	_, err := fx.service.Work(context.Background(), &usecase.WorkInput{UserID: profile.UserID, JobID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrJobNotFound)
}

func TestGameService_CreateTrack_Success(t *testing.T) {
	fx := createTestGameService(t)
	ctx := context.Background()
	profile := createTestCareer(t, fx)

	updated, err := fx.service.CreateTrack(ctx, &usecase.CreateTrackInput{
		UserID: profile.UserID,
		Title:  "First Single",
		Beat:   "trap_beat_1",
	})
	require.NoError(t, err)

	assert.Equal(t, 30, updated.Energy)
	require.Len(t, updated.Tracks, 1)
	track := updated.Tracks[0]
	assert.Equal(t, "First Single", track.Title)
	assert.False(t, track.IsReleased)
	// Roll [25,74] plus 2 per rapping and production level, both at 1.
	assert.GreaterOrEqual(t, track.Quality, 29)
	assert.LessOrEqual(t, track.Quality, 78)
}

func TestGameService_CreateTrack_InsufficientEnergy(t *testing.T) {
	fx := createTestGameService(t)
	ctx := context.Background()
	profile := createTestCareer(t, fx)

	for i := 0; i < 2; i++ {
		_, err := fx.service.CreateTrack(ctx, &usecase.CreateTrackInput{UserID: profile.UserID, Title: "Track", Beat: "beat"})
		require.NoError(t, err)
	}

	_, err := fx.service.CreateTrack(ctx, &usecase.CreateTrackInput{UserID: profile.UserID, Title: "Track", Beat: "beat"})
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientEnergy)

	stored, err := fx.service.GetProfile(ctx, profile.UserID)
	require.NoError(t, err)
	assert.Len(t, stored.Tracks, 2)
	assert.Equal(t, 10, stored.Energy)
}

func TestGameService_ReleaseTrack_OneWay(t *testing.T) {
	fx := createTestGameService(t)
	ctx := context.Background()
	profile := createTestCareer(t, fx)

	updated, err := fx.service.CreateTrack(ctx, &usecase.CreateTrackInput{UserID: profile.UserID, Title: "Single", Beat: "beat"})
	require.NoError(t, err)
	trackID := updated.Tracks[0].ID

	released, err := fx.service.ReleaseTrack(ctx, &usecase.ReleaseTrackInput{UserID: profile.UserID, TrackID: trackID})
	require.NoError(t, err)

	track := released.TrackByID(trackID)
	require.NotNil(t, track)
	assert.True(t, track.IsReleased)
	assert.False(t, track.ReleaseDate.IsZero())
	assert.Equal(t, track.Views*7/10, track.Streams)
	assert.Equal(t, track.Views*5/100, track.Likes)
	assert.GreaterOrEqual(t, released.Fame, track.Quality/2)

	_, err = fx.service.ReleaseTrack(ctx, &usecase.ReleaseTrackInput{UserID: profile.UserID, TrackID: trackID})
	assert.ErrorIs(t, err, domainerrors.ErrTrackAlreadyReleased)
}

func TestGameService_ReleaseTrack_NotFound(t *testing.T) {
	fx := createTestGameService(t)
	profile := createTestCareer(t, fx)

	_, err := fx.service.ReleaseTrack(context.Background(), &usecase.ReleaseTrackInput{UserID: profile.UserID, TrackID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrTrackNotFound)
}

func TestGameService_CreateMusicVideo_BudgetValidation(t *testing.T) {
	fx := createTestGameService(t)
	ctx := context.Background()
	profile := createTestCareer(t, fx)

	updated, err := fx.service.CreateTrack(ctx, &usecase.CreateTrackInput{UserID: profile.UserID, Title: "Single", Beat: "beat"})
	require.NoError(t, err)
	trackID := updated.Tracks[0].ID

	_, err = fx.service.CreateMusicVideo(ctx, &usecase.CreateMusicVideoInput{UserID: profile.UserID, TrackID: trackID, Budget: 750})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidBudget)

	// Valid tier, but a fresh career cannot afford it.
	_, err = fx.service.CreateMusicVideo(ctx, &usecase.CreateMusicVideoInput{UserID: profile.UserID, TrackID: trackID, Budget: 5000})
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientFunds)
}

func TestGameService_CreateMusicVideo_Success(t *testing.T) {
	fx := createTestGameService(t)
	ctx := context.Background()
	profile := createTestCareer(t, fx)

	updated, err := fx.service.CreateTrack(ctx, &usecase.CreateTrackInput{UserID: profile.UserID, Title: "Single", Beat: "beat"})
	require.NoError(t, err)
	trackID := updated.Tracks[0].ID

	money := 2000
	_, err = fx.service.UpdateProfile(ctx, profile.UserID, &usecase.UpdateProfileInput{Money: &money})
	require.NoError(t, err)

	after, err := fx.service.CreateMusicVideo(ctx, &usecase.CreateMusicVideoInput{UserID: profile.UserID, TrackID: trackID, Budget: 500})
	require.NoError(t, err)

	track := after.TrackByID(trackID)
	require.NotNil(t, track)
	assert.True(t, track.HasVideo)
	assert.Positive(t, track.VideoViews)
	assert.Equal(t, 2000+track.VideoViews*2/1000-500, after.Money)

	_, err = fx.service.CreateMusicVideo(ctx, &usecase.CreateMusicVideoInput{UserID: profile.UserID, TrackID: trackID, Budget: 500})
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyHasVideo)
}

func TestGameService_UpgradeSkill_Success(t *testing.T) {
	fx := createTestGameService(t)
	ctx := context.Background()
	profile := createTestCareer(t, fx)

	updated, err := fx.service.UpgradeSkill(ctx, &usecase.UpgradeSkillInput{UserID: profile.UserID, Skill: entity.SkillRapping})
	require.NoError(t, err)

	assert.Equal(t, 2, updated.Skills.Rapping)
	assert.Equal(t, 49, updated.Energy)
}

func TestGameService_UpgradeSkill_UnknownName(t *testing.T) {
	fx := createTestGameService(t)
	profile := createTestCareer(t, fx)

	_, err := fx.service.UpgradeSkill(context.Background(), &usecase.UpgradeSkillInput{UserID: profile.UserID, Skill: "charisma"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestGameService_AdvanceWeek_RestoresEnergy(t *testing.T) {
	fx := createTestGameService(t)
	ctx := context.Background()
	profile := createTestCareer(t, fx)

	_, err := fx.service.CreateTrack(ctx, &usecase.CreateTrackInput{UserID: profile.UserID, Title: "Single", Beat: "beat"})
	require.NoError(t, err)

	updated, err := fx.service.AdvanceWeek(ctx, &usecase.AdvanceWeekInput{UserID: profile.UserID})
	require.NoError(t, err)

	assert.Equal(t, 100, updated.Energy)
	assert.GreaterOrEqual(t, updated.Year, 2020)
	assert.GreaterOrEqual(t, updated.Age, 20)
}

func TestGameService_CreateSocialPost_FeedCap(t *testing.T) {
	fx := createTestGameService(t)
	ctx := context.Background()
	profile := createTestCareer(t, fx)

	for i := 0; i < entity.MaxSocialPosts+5; i++ {
		_, err := fx.service.CreateSocialPost(ctx, &usecase.CreateSocialPostInput{
			UserID:  profile.UserID,
			Type:    entity.PostText,
			Content: "new post",
		})
		require.NoError(t, err)
	}

	stored, err := fx.service.GetProfile(ctx, profile.UserID)
	require.NoError(t, err)
	assert.Len(t, stored.SocialPosts, entity.MaxSocialPosts)
	// Newest first.
	assert.Equal(t, "new post", stored.SocialPosts[0].Content)
	assert.Positive(t, stored.SocialStats.RapGramFollowers+stored.SocialStats.RapTubeSubscribers+stored.SocialStats.TotalStreams)
}

func TestGameService_CreateSocialPost_InvalidType(t *testing.T) {
	fx := createTestGameService(t)
	profile := createTestCareer(t, fx)

	_, err := fx.service.CreateSocialPost(context.Background(), &usecase.CreateSocialPostInput{
		UserID:  profile.UserID,
		Type:    "livestream",
		Content: "hello",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestGameService_PromoteTrack_Success(t *testing.T) {
	fx := createTestGameService(t)
	ctx := context.Background()
	profile := createTestCareer(t, fx)

	updated, err := fx.service.CreateTrack(ctx, &usecase.CreateTrackInput{UserID: profile.UserID, Title: "Single", Beat: "beat"})
	require.NoError(t, err)
	trackID := updated.Tracks[0].ID

	after, err := fx.service.PromoteTrack(ctx, &usecase.PromoteTrackInput{UserID: profile.UserID, TrackID: trackID, Budget: 100})
	require.NoError(t, err)

	track := after.TrackByID(trackID)
	require.NotNil(t, track)
	assert.Positive(t, track.Views)
	assert.Equal(t, track.Earnings, after.Money)
	assert.Positive(t, after.SocialStats.RapGramFollowers)
}

func TestGameService_PromoteTrack_InvalidBudget(t *testing.T) {
	fx := createTestGameService(t)
	ctx := context.Background()
	profile := createTestCareer(t, fx)

	updated, err := fx.service.CreateTrack(ctx, &usecase.CreateTrackInput{UserID: profile.UserID, Title: "Single", Beat: "beat"})
	require.NoError(t, err)

	_, err = fx.service.PromoteTrack(ctx, &usecase.PromoteTrackInput{UserID: profile.UserID, TrackID: updated.Tracks[0].ID, Budget: 999})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidBudget)
}

func TestGameService_BuyItem_FullFlow(t *testing.T) {
	fx := createTestGameService(t)
	ctx := context.Background()
	profile := createTestCareer(t, fx)
	item := findItemByName(t, fx, "Used Car")

	_, err := fx.service.BuyItem(ctx, &usecase.BuyItemInput{UserID: profile.UserID, ItemID: item.ID})
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientFunds)

	money := 1000
	_, err = fx.service.UpdateProfile(ctx, profile.UserID, &usecase.UpdateProfileInput{Money: &money})
	require.NoError(t, err)

	after, err := fx.service.BuyItem(ctx, &usecase.BuyItemInput{UserID: profile.UserID, ItemID: item.ID})
	require.NoError(t, err)

	assert.Equal(t, 500, after.Money)
	assert.Equal(t, 1000, after.NetWorth)
	assert.Equal(t, 5, after.Reputation)
	require.Len(t, after.Inventory, 1)
	assert.Equal(t, item.ID, after.Inventory[0].ItemID)
	assert.Equal(t, 500, after.Inventory[0].Value)

	_, err = fx.service.BuyItem(ctx, &usecase.BuyItemInput{UserID: profile.UserID, ItemID: item.ID})
	assert.ErrorIs(t, err, domainerrors.ErrItemAlreadyOwned)
}

func TestGameService_BuyItem_NotFound(t *testing.T) {
	fx := createTestGameService(t)
	profile := createTestCareer(t, fx)

	_, err := fx.service.BuyItem(context.Background(), &usecase.BuyItemInput{UserID: profile.UserID, ItemID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)
}

func TestGameService_GetStats_Aggregates(t *testing.T) {
	fx := createTestGameService(t)
	ctx := context.Background()
	profile := createTestCareer(t, fx)

	updated, err := fx.service.CreateTrack(ctx, &usecase.CreateTrackInput{UserID: profile.UserID, Title: "A", Beat: "beat"})
	require.NoError(t, err)
	released, err := fx.service.ReleaseTrack(ctx, &usecase.ReleaseTrackInput{UserID: profile.UserID, TrackID: updated.Tracks[0].ID})
	require.NoError(t, err)

	stats, err := fx.service.GetStats(ctx, profile.UserID)
	require.NoError(t, err)

	track := released.Tracks[0]
	assert.Equal(t, 1, stats.TotalTracks)
	assert.Equal(t, 1, stats.ReleasedTracks)
	assert.Equal(t, 0, stats.TotalMusicVideos)
	assert.Equal(t, track.Views, stats.TotalViews)
	assert.Equal(t, track.Streams, stats.TotalStreams)
	assert.Equal(t, track.Earnings, stats.TotalEarnings)
}

func TestGameService_ActionOnMissingProfile(t *testing.T) {
	fx := createTestGameService(t)

	_, err := fx.service.AdvanceWeek(context.Background(), &usecase.AdvanceWeekInput{UserID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}
