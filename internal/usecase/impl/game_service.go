// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "rapmaster/internal/delivery/context"
	"rapmaster/internal/domain/entity"
	domainerrors "rapmaster/internal/domain/errors"
	"rapmaster/internal/domain/progression"
	"rapmaster/internal/domain/repository"
	"rapmaster/internal/infra/metrics"
	"rapmaster/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Default starting stats for a freshly created career.
const (
	startingAge    = 20
	startingYear   = 2020
	startingMoney  = 100
	startingEnergy = 50
	startingAvatar = 1
)

// gameService implements the GameUsecase interface. Mutating actions are
// serialized per userId so concurrent requests for the same profile apply
// one at a time against the latest stored snapshot.
type gameService struct {
	profiles repository.ProfileRepository
	catalog  repository.CatalogRepository
	engine   *progression.Engine
	metrics  *metrics.Metrics
	logger   *slog.Logger

	locks sync.Map // uuid.UUID -> *sync.Mutex
}

// GameServiceParams holds dependencies for GameService, injected by Fx.
type GameServiceParams struct {
	fx.In

	Profiles repository.ProfileRepository
	Catalog  repository.CatalogRepository
	Engine   *progression.Engine
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
}

// NewGameService is the constructor for gameService.
func NewGameService(params GameServiceParams) usecase.GameUsecase {
	return &gameService{
		profiles: params.Profiles,
		catalog:  params.Catalog,
		engine:   params.Engine,
		metrics:  params.Metrics,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *gameService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *gameService) userLock(userID uuid.UUID) *sync.Mutex {
	lock, _ := srv.locks.LoadOrStore(userID, &sync.Mutex{})

	return lock.(*sync.Mutex)
}

// withProfile runs fn against the stored profile under the user's lock and
// persists the result. The stored record is untouched when fn fails.
func (srv *gameService) withProfile(
	ctx context.Context,
	userID uuid.UUID,
	action string,
	fn func(profile *entity.Profile) error,
) (profile *entity.Profile, err error) {
	defer func() { srv.metrics.ObserveAction(action, err) }()

	lock := srv.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	profile, err = srv.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.WithStack(domainerrors.ErrProfileNotFound)
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	if err = fn(profile); err != nil {
		return nil, err
	}

	if err = srv.profiles.Update(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return profile, nil
}

// CreateProfile starts a new career with the standard starting stats.
func (srv *gameService) CreateProfile(ctx context.Context, input *usecase.CreateProfileInput) (profile *entity.Profile, err error) {
	defer func() { srv.metrics.ObserveAction("create_profile", err) }()

	srv.log(ctx).Info("Creating profile", "stageName", input.StageName, "userID", input.UserID)

	userID := input.UserID
	if userID == uuid.Nil {
		userID = uuid.New()
	}

	avatar := input.Avatar
	if avatar == 0 {
		avatar = startingAvatar
	}
	age := input.Age
	if age == 0 {
		age = startingAge
	}

	profile = &entity.Profile{
		UserID:      userID,
		StageName:   input.StageName,
		Avatar:      avatar,
		City:        input.City,
		Age:         age,
		Year:        startingYear,
		Money:       startingMoney,
		Energy:      startingEnergy,
		NetWorth:    startingMoney,
		Skills:      entity.Skills{Rapping: 1, Production: 1, SocialMedia: 1, Performance: 1, Business: 1},
		Inventory:   []entity.InventoryItem{},
		Tracks:      []entity.Track{},
		Albums:      []entity.Album{},
		SocialPosts: []entity.Post{},
	}

	if err = srv.profiles.Create(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrDuplicateUserID) {
			return nil, errors.WithStack(domainerrors.ErrProfileAlreadyExists)
		}

		return nil, errors.Wrap(err, "failed to create profile")
	}

	return profile, nil
}

// GetProfile returns the current career snapshot for a user.
func (srv *gameService) GetProfile(ctx context.Context, userID uuid.UUID) (profile *entity.Profile, err error) {
	defer func() { srv.metrics.ObserveAction("get_profile", err) }()

	profile, err = srv.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.WithStack(domainerrors.ErrProfileNotFound)
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

// UpdateProfile applies a shallow merge of the provided fields.
func (srv *gameService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	srv.log(ctx).Info("Updating profile", "userID", userID)

	return srv.withProfile(ctx, userID, "update_profile", func(profile *entity.Profile) error {
		if input.StageName != nil {
			profile.StageName = *input.StageName
		}
		if input.Avatar != nil {
			profile.Avatar = *input.Avatar
		}
		if input.City != nil {
			profile.City = *input.City
		}
		if input.Money != nil {
			profile.Money = *input.Money
		}
		if input.Energy != nil {
			profile.Energy = *input.Energy
		}
		if input.Fame != nil {
			profile.Fame = *input.Fame
		}
		if input.Reputation != nil {
			profile.Reputation = *input.Reputation
		}
		if input.Fans != nil {
			profile.Fans = *input.Fans
		}

		profile.NetWorth = profile.Money + profile.InventoryValue()

		return nil
	})
}

// GetStats aggregates career totals across every track the player owns.
func (srv *gameService) GetStats(ctx context.Context, userID uuid.UUID) (stats *usecase.StatsOutput, err error) {
	defer func() { srv.metrics.ObserveAction("get_stats", err) }()

	profile, err := srv.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.WithStack(domainerrors.ErrProfileNotFound)
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	stats = &usecase.StatsOutput{TotalTracks: len(profile.Tracks)}
	for i := range profile.Tracks {
		track := &profile.Tracks[i]
		if track.IsReleased {
			stats.ReleasedTracks++
		}
		if track.HasVideo {
			stats.TotalMusicVideos++
		}
		stats.TotalViews += track.Views
		stats.TotalStreams += track.Streams
		stats.TotalLikes += track.Likes
		stats.TotalEarnings += track.Earnings
	}

	return stats, nil
}

// Work performs a job shift, trading energy for money and fame.
func (srv *gameService) Work(ctx context.Context, input *usecase.WorkInput) (*entity.Profile, error) {
	srv.log(ctx).Debug("Working job", "userID", input.UserID, "jobID", input.JobID)

	job, err := srv.catalog.FindJob(ctx, input.JobID)
	if err != nil {
		srv.metrics.ObserveAction("work", err)
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, errors.WithStack(domainerrors.ErrJobNotFound)
		}

		return nil, errors.Wrap(err, "failed to find job")
	}

	return srv.withProfile(ctx, input.UserID, "work", func(profile *entity.Profile) error {
		return srv.engine.Work(profile, job)
	})
}

// CreateTrack records a new unreleased track.
func (srv *gameService) CreateTrack(ctx context.Context, input *usecase.CreateTrackInput) (*entity.Profile, error) {
	srv.log(ctx).Debug("Creating track", "userID", input.UserID, "title", input.Title)

	return srv.withProfile(ctx, input.UserID, "create_track", func(profile *entity.Profile) error {
		_, err := srv.engine.CreateTrack(profile, input.Title, input.Beat)

		return err
	})
}

// ReleaseTrack publishes an unreleased track and stamps its initial engagement.
func (srv *gameService) ReleaseTrack(ctx context.Context, input *usecase.ReleaseTrackInput) (*entity.Profile, error) {
	srv.log(ctx).Debug("Releasing track", "userID", input.UserID, "trackID", input.TrackID)

	return srv.withProfile(ctx, input.UserID, "release_track", func(profile *entity.Profile) error {
		_, err := srv.engine.ReleaseTrack(profile, input.TrackID)

		return err
	})
}

// CreateMusicVideo shoots a video for a released track.
func (srv *gameService) CreateMusicVideo(ctx context.Context, input *usecase.CreateMusicVideoInput) (*entity.Profile, error) {
	srv.log(ctx).Debug("Creating music video", "userID", input.UserID, "trackID", input.TrackID, "budget", input.Budget)

	return srv.withProfile(ctx, input.UserID, "create_music_video", func(profile *entity.Profile) error {
		_, err := srv.engine.CreateMusicVideo(profile, input.TrackID, input.Budget)

		return err
	})
}

// UpgradeSkill raises one skill track by a single level.
func (srv *gameService) UpgradeSkill(ctx context.Context, input *usecase.UpgradeSkillInput) (*entity.Profile, error) {
	srv.log(ctx).Debug("Upgrading skill", "userID", input.UserID, "skill", input.Skill)

	return srv.withProfile(ctx, input.UserID, "upgrade_skill", func(profile *entity.Profile) error {
		return srv.engine.UpgradeSkill(profile, input.Skill)
	})
}

// AdvanceWeek moves the career calendar forward and restores energy.
func (srv *gameService) AdvanceWeek(ctx context.Context, input *usecase.AdvanceWeekInput) (*entity.Profile, error) {
	srv.log(ctx).Debug("Advancing week", "userID", input.UserID)

	return srv.withProfile(ctx, input.UserID, "advance_week", func(profile *entity.Profile) error {
		srv.engine.AdvanceWeek(profile)

		return nil
	})
}

// CreateSocialPost publishes a post and applies its engagement effects.
func (srv *gameService) CreateSocialPost(ctx context.Context, input *usecase.CreateSocialPostInput) (*entity.Profile, error) {
	srv.log(ctx).Debug("Creating social post", "userID", input.UserID, "type", input.Type)

	return srv.withProfile(ctx, input.UserID, "create_social_post", func(profile *entity.Profile) error {
		_, err := srv.engine.CreateSocialPost(profile, input.Type, input.Content, input.TrackID)

		return err
	})
}

// PromoteTrack runs a paid promotion campaign for a released track.
func (srv *gameService) PromoteTrack(ctx context.Context, input *usecase.PromoteTrackInput) (*entity.Profile, error) {
	srv.log(ctx).Debug("Promoting track", "userID", input.UserID, "trackID", input.TrackID, "budget", input.Budget)

	return srv.withProfile(ctx, input.UserID, "promote_track", func(profile *entity.Profile) error {
		_, err := srv.engine.PromoteTrack(profile, input.TrackID, input.Budget)

		return err
	})
}

// BuyItem purchases a shop item and applies its stat boosts.
func (srv *gameService) BuyItem(ctx context.Context, input *usecase.BuyItemInput) (*entity.Profile, error) {
	srv.log(ctx).Debug("Buying item", "userID", input.UserID, "itemID", input.ItemID)

	item, err := srv.catalog.FindShopItem(ctx, input.ItemID)
	if err != nil {
		srv.metrics.ObserveAction("buy_item", err)
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, errors.WithStack(domainerrors.ErrItemNotFound)
		}

		return nil, errors.Wrap(err, "failed to find shop item")
	}

	return srv.withProfile(ctx, input.UserID, "buy_item", func(profile *entity.Profile) error {
		return srv.engine.BuyItem(profile, item)
	})
}
