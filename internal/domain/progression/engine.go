// Package progression computes the reward deltas each player action
// produces. The engine mutates a profile snapshot in place; callers own
// the load-compute-store cycle around it. Every method validates its
// preconditions before touching the profile, so a returned error always
// means the profile is unchanged.
package progression

import (
	"math/rand/v2"
	"time"

	"rapmaster/internal/domain/entity"
	domainerrors "rapmaster/internal/domain/errors"

	"github.com/google/uuid"
)

const (
	baseYear     = 2020
	weeksPerYear = 52

	trackEnergyCost = 20
	fullEnergy      = 100
)

// videoBudgetQuality maps a music video budget tier to its production quality.
var videoBudgetQuality = map[int]int{
	500:  30,
	2000: 60,
	5000: 90,
}

// promotionMultiplier maps a promotion budget tier to its reach multiplier.
var promotionMultiplier = map[int]int{
	100:  2,
	500:  5,
	2000: 10,
}

// Engine computes reward deltas. Randomness and time are injected so
// tests can pin them down; the defaults draw from the shared math/rand
// source, which is safe for concurrent use.
type Engine struct {
	intN func(n int) int
	now  func() time.Time
}

// New creates an Engine with the default randomness and clock.
func New() *Engine {
	return &Engine{
		intN: rand.IntN,
		now:  time.Now,
	}
}

// Work applies one shift of the given job. Preconditions: enough energy
// to cover the job's cost and enough fame to unlock it.
func (e *Engine) Work(profile *entity.Profile, job *entity.Job) error {
	if profile.Energy < job.EnergyCost {
		return domainerrors.ErrInsufficientEnergy
	}
	if profile.Fame < job.RequiredFame {
		return domainerrors.ErrInsufficientFame
	}

	profile.Money += job.MoneyReward
	profile.Energy += job.EnergyReward - job.EnergyCost
	profile.Fame += job.FameReward
	e.recalculateNetWorth(profile)

	return nil
}

// CreateTrack records a new unreleased track. Quality is a uniform roll
// in [25,74] plus twice the rapping and production levels, capped at 100.
func (e *Engine) CreateTrack(profile *entity.Profile, title, beat string) (*entity.Track, error) {
	if profile.Energy < trackEnergyCost {
		return nil, domainerrors.ErrInsufficientEnergy
	}

	quality := e.intN(50) + 25 +
		profile.Skills.Rapping*2 +
		profile.Skills.Production*2
	quality = min(quality, 100)

	track := entity.Track{
		ID:      uuid.New(),
		Title:   title,
		Beat:    beat,
		Quality: quality,
	}

	profile.Energy -= trackEnergyCost
	profile.Tracks = append(profile.Tracks, track)

	return &profile.Tracks[len(profile.Tracks)-1], nil
}

// ReleaseTrack flips a track to released, a one-way transition, and
// stamps its initial engagement from quality plus a random draw.
func (e *Engine) ReleaseTrack(profile *entity.Profile, trackID uuid.UUID) (*entity.Track, error) {
	track := profile.TrackByID(trackID)
	if track == nil {
		return nil, domainerrors.ErrTrackNotFound
	}
	if track.IsReleased {
		return nil, domainerrors.ErrTrackAlreadyReleased
	}

	track.IsReleased = true
	track.ReleaseDate = e.now()
	track.Views = e.intN(1000) + track.Quality*10
	track.Streams = track.Views * 7 / 10
	track.Likes = track.Views * 5 / 100
	track.Dislikes = track.Views / 100
	track.Comments = track.Views * 2 / 100
	track.Earnings = track.Streams * 3 / 1000
	track.HasVideo = false
	track.VideoViews = 0

	profile.Fame += track.Quality / 2
	profile.Fans += track.Views / 10
	profile.Money += track.Earnings
	e.recalculateNetWorth(profile)

	return track, nil
}

// CreateMusicVideo shoots a video for a track. The budget must be one of
// the defined tiers; each track gets at most one video.
func (e *Engine) CreateMusicVideo(profile *entity.Profile, trackID uuid.UUID, budget int) (*entity.Track, error) {
	videoQuality, ok := videoBudgetQuality[budget]
	if !ok {
		return nil, domainerrors.ErrInvalidBudget
	}
	if profile.Money < budget {
		return nil, domainerrors.ErrInsufficientFunds
	}

	track := profile.TrackByID(trackID)
	if track == nil {
		return nil, domainerrors.ErrTrackNotFound
	}
	if track.HasVideo {
		return nil, domainerrors.ErrAlreadyHasVideo
	}

	track.HasVideo = true
	track.VideoViews = e.intN(5000) + videoQuality*50

	// The video feeds back into the track's own numbers.
	track.Views += track.VideoViews * 3 / 10
	track.Streams += track.VideoViews * 2 / 10
	track.Likes += track.VideoViews * 5 / 100
	track.Earnings += track.VideoViews * 2 / 1000

	profile.Money += track.VideoViews*2/1000 - budget
	profile.Fame += videoQuality / 2
	profile.Fans += track.VideoViews * 5 / 100
	e.recalculateNetWorth(profile)

	return track, nil
}

// UpgradeSkill raises the named skill by one level. The energy cost
// equals the current level, and levels cap at entity.MaxSkillLevel.
func (e *Engine) UpgradeSkill(profile *entity.Profile, name entity.SkillName) error {
	if !name.Valid() {
		return domainerrors.ErrValidationFailed
	}

	level := profile.Skills.Level(name)
	if level >= entity.MaxSkillLevel {
		return domainerrors.ErrSkillMaxLevel
	}
	if profile.Energy < level {
		return domainerrors.ErrInsufficientEnergy
	}

	profile.Energy -= level
	profile.Skills.SetLevel(name, level+1)

	return nil
}

// AdvanceWeek moves the game clock forward one week. Crossing a year
// boundary ages the character by one, and energy resets to full.
func (e *Engine) AdvanceWeek(profile *entity.Profile) {
	currentWeek := (profile.Year-baseYear)*weeksPerYear + 1
	newWeek := currentWeek + 1
	newYear := baseYear + newWeek/weeksPerYear

	if newYear > profile.Year {
		profile.Age++
	}
	profile.Year = newYear
	profile.Energy = fullEnergy
}

// CreateSocialPost publishes a post with engagement derived from fame,
// prepends it to the feed and trims the feed to the retention cap.
func (e *Engine) CreateSocialPost(profile *entity.Profile, postType entity.PostType, content string, trackID uuid.UUID) (*entity.Post, error) {
	if !postType.Valid() {
		return nil, domainerrors.ErrValidationFailed
	}

	baseEngagement := e.intN(1000) + profile.Fame*10

	post := entity.Post{
		ID:        uuid.New(),
		Type:      postType,
		Content:   content,
		Likes:     baseEngagement * 5 / 100,
		Comments:  baseEngagement * 2 / 100,
		Shares:    baseEngagement / 100,
		Views:     baseEngagement,
		Timestamp: e.now(),
		TrackID:   trackID,
	}

	profile.SocialPosts = append([]entity.Post{post}, profile.SocialPosts...)
	if len(profile.SocialPosts) > entity.MaxSocialPosts {
		profile.SocialPosts = profile.SocialPosts[:entity.MaxSocialPosts]
	}

	followerGain := post.Views / 100
	profile.SocialStats.RapGramFollowers += followerGain
	profile.SocialStats.RapTubeSubscribers += post.Views * 5 / 1000
	profile.SocialStats.TotalStreams += post.Views / 10
	profile.Fame += post.Views / 1000
	profile.Fans += followerGain

	return &profile.SocialPosts[0], nil
}

// PromoteTrack buys promotion for a track. The budget must be one of the
// defined tiers; reach scales with the tier multiplier. The money update
// credits the track's accumulated earnings, matching the original game
// balance.
func (e *Engine) PromoteTrack(profile *entity.Profile, trackID uuid.UUID, budget int) (*entity.Track, error) {
	multiplier, ok := promotionMultiplier[budget]
	if !ok {
		return nil, domainerrors.ErrInvalidBudget
	}
	if profile.Money < budget {
		return nil, domainerrors.ErrInsufficientFunds
	}

	track := profile.TrackByID(trackID)
	if track == nil {
		return nil, domainerrors.ErrTrackNotFound
	}

	promotionViews := e.intN(10000) + budget*10
	boost := promotionViews * multiplier

	track.Views += boost
	track.Streams += boost * 6 / 10
	track.Likes += boost * 4 / 100
	track.Earnings += boost * 3 / 1000

	profile.SocialStats.RapGramFollowers += boost * 2 / 100
	profile.SocialStats.RapTubeSubscribers += boost / 100
	profile.SocialStats.TotalStreams += boost * 6 / 10
	profile.Fame += boost * 2 / 1000
	profile.Fans += boost * 2 / 100
	profile.Money += track.Earnings - budget
	e.recalculateNetWorth(profile)

	return track, nil
}

// BuyItem purchases a shop item. Preconditions: enough money, the item's
// fame threshold reached, and the item not already owned. The purchase
// price carries over as asset value.
func (e *Engine) BuyItem(profile *entity.Profile, item *entity.ShopItem) error {
	if profile.Money < item.Price {
		return domainerrors.ErrInsufficientFunds
	}
	if profile.Fame < item.RequiredLevel {
		return domainerrors.ErrInsufficientFame
	}
	if profile.OwnsItem(item.ID) {
		return domainerrors.ErrItemAlreadyOwned
	}

	profile.Money -= item.Price
	profile.Fame += item.FameBoost
	profile.Reputation += item.ReputationBoost
	profile.Fans += item.FanBoost
	profile.Inventory = append(profile.Inventory, entity.InventoryItem{
		ItemID:      item.ID,
		Name:        item.Name,
		Category:    item.Category,
		Value:       item.Price,
		PurchasedAt: e.now(),
	})
	e.recalculateNetWorth(profile)

	return nil
}

// recalculateNetWorth re-derives net worth as liquid money plus the
// asset value of the inventory. Applied after every money-affecting
// action so net worth never drifts from its definition.
func (e *Engine) recalculateNetWorth(profile *entity.Profile) {
	profile.NetWorth = profile.Money + profile.InventoryValue()
}
