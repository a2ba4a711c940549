// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is a player's complete game state. Everything the player owns
// (tracks, posts, albums, inventory) is embedded in the profile document;
// no embedded record is shared between profiles.
type Profile struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"userId"` // uuid.Nil when the profile is not linked to a user account
	StageName   string          `json:"stageName"`
	Avatar      int             `json:"avatar"`
	City        string          `json:"city"`
	Age         int             `json:"age"`
	Year        int             `json:"year"`
	Money       int             `json:"money"`
	Energy      int             `json:"energy"`
	Fame        int             `json:"fame"`
	Reputation  int             `json:"reputation"`
	Fans        int             `json:"fans"`
	NetWorth    int             `json:"netWorth"`
	Skills      Skills          `json:"skills"`
	Inventory   []InventoryItem `json:"inventory"`
	Tracks      []Track         `json:"tracks"`
	Albums      []Album         `json:"albums"`
	SocialStats SocialStats     `json:"socialStats"`
	SocialPosts []Post          `json:"socialPosts"` // newest first, capped at MaxSocialPosts
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// MaxSocialPosts is the number of most recent posts kept on a profile.
const MaxSocialPosts = 50

// Skills holds the five fixed skill tracks, each a level from 1 up to
// MaxSkillLevel.
type Skills struct {
	Rapping     int `json:"rapping"`
	Production  int `json:"production"`
	SocialMedia int `json:"socialMedia"`
	Performance int `json:"performance"`
	Business    int `json:"business"`
}

// MaxSkillLevel caps every skill track.
const MaxSkillLevel = 100

// SkillName identifies one of the five skill tracks.
type SkillName string

const (
	SkillRapping     SkillName = "rapping"
	SkillProduction  SkillName = "production"
	SkillSocialMedia SkillName = "socialMedia"
	SkillPerformance SkillName = "performance"
	SkillBusiness    SkillName = "business"
)

// Valid reports whether the name is one of the five skill tracks.
func (n SkillName) Valid() bool {
	switch n {
	case SkillRapping, SkillProduction, SkillSocialMedia, SkillPerformance, SkillBusiness:
		return true
	}

	return false
}

// Level returns the current level of the named skill.
func (s *Skills) Level(name SkillName) int {
	switch name {
	case SkillRapping:
		return s.Rapping
	case SkillProduction:
		return s.Production
	case SkillSocialMedia:
		return s.SocialMedia
	case SkillPerformance:
		return s.Performance
	case SkillBusiness:
		return s.Business
	}

	return 0
}

// SetLevel sets the level of the named skill. Unknown names are ignored;
// callers validate with SkillName.Valid first.
func (s *Skills) SetLevel(name SkillName, level int) {
	switch name {
	case SkillRapping:
		s.Rapping = level
	case SkillProduction:
		s.Production = level
	case SkillSocialMedia:
		s.SocialMedia = level
	case SkillPerformance:
		s.Performance = level
	case SkillBusiness:
		s.Business = level
	}
}

// SocialStats holds the aggregate social media counters for a profile.
type SocialStats struct {
	RapGramFollowers   int  `json:"rapGramFollowers"`
	RapTubeSubscribers int  `json:"rapTubeSubscribers"`
	TotalStreams       int  `json:"totalStreams"`
	Verified           bool `json:"verified"`
	PremiumVerified    bool `json:"premiumVerified"`
}

// InventoryItem records a shop purchase. Value is the purchase price and
// counts toward the profile's net worth.
type InventoryItem struct {
	ItemID      uuid.UUID `json:"itemId"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Value       int       `json:"value"`
	PurchasedAt time.Time `json:"purchasedAt"`
}

// Album groups released tracks. Albums are carried on the profile but no
// album operations exist yet.
type Album struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	TrackIDs    []uuid.UUID `json:"trackIds"`
	Sales       int         `json:"sales"`
	Quality     int         `json:"quality"`
	ReleaseDate time.Time   `json:"releaseDate"`
}

// InventoryValue sums the asset value of all owned items.
func (p *Profile) InventoryValue() int {
	total := 0
	for i := range p.Inventory {
		total += p.Inventory[i].Value
	}

	return total
}

// TrackByID returns a pointer into the profile's track slice, or nil.
func (p *Profile) TrackByID(id uuid.UUID) *Track {
	for i := range p.Tracks {
		if p.Tracks[i].ID == id {
			return &p.Tracks[i]
		}
	}

	return nil
}

// OwnsItem reports whether the profile already purchased the shop item.
func (p *Profile) OwnsItem(itemID uuid.UUID) bool {
	for i := range p.Inventory {
		if p.Inventory[i].ItemID == itemID {
			return true
		}
	}

	return false
}

// Clone returns a deep copy of the profile. The store hands out and
// accepts only clones so callers never alias stored state.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}

	clone := *p

	clone.Inventory = make([]InventoryItem, len(p.Inventory))
	copy(clone.Inventory, p.Inventory)

	clone.Tracks = make([]Track, len(p.Tracks))
	copy(clone.Tracks, p.Tracks)

	clone.Albums = make([]Album, len(p.Albums))
	for i := range p.Albums {
		clone.Albums[i] = p.Albums[i]
		clone.Albums[i].TrackIDs = make([]uuid.UUID, len(p.Albums[i].TrackIDs))
		copy(clone.Albums[i].TrackIDs, p.Albums[i].TrackIDs)
	}

	clone.SocialPosts = make([]Post, len(p.SocialPosts))
	copy(clone.SocialPosts, p.SocialPosts)

	return &clone
}
