package entity

import (
	"time"

	"github.com/google/uuid"
)

// Track is a player-created music asset embedded in a profile.
// A track transitions unreleased -> released exactly once; the engagement
// fields are only meaningful once IsReleased is true. HasVideo flips
// false -> true exactly once, independently of release.
type Track struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Beat        string    `json:"beat"`
	Quality     int       `json:"quality"` // 0-100, fixed at creation
	IsReleased  bool      `json:"isReleased"`
	ReleaseDate time.Time `json:"releaseDate,omitzero"`
	Views       int       `json:"views"`
	Streams     int       `json:"streams"`
	Likes       int       `json:"likes"`
	Dislikes    int       `json:"dislikes"`
	Comments    int       `json:"comments"`
	Earnings    int       `json:"earnings"`
	HasVideo    bool      `json:"hasVideo"`
	VideoViews  int       `json:"videoViews"`
}
