package entity

import (
	"time"

	"github.com/google/uuid"
)

// PostType classifies a social media post.
type PostType string

const (
	PostText              PostType = "text"
	PostPhoto             PostType = "photo"
	PostVideo             PostType = "video"
	PostTrackAnnouncement PostType = "track_announcement"
	PostVideoAnnouncement PostType = "video_announcement"
)

// Valid reports whether the type is one of the known post types.
func (t PostType) Valid() bool {
	switch t {
	case PostText, PostPhoto, PostVideo, PostTrackAnnouncement, PostVideoAnnouncement:
		return true
	}

	return false
}

// Post is a social media post embedded in a profile. Posts are created
// once with their engagement stamped and never edited afterwards.
type Post struct {
	ID        uuid.UUID `json:"id"`
	Type      PostType  `json:"type"`
	Content   string    `json:"content"`
	Likes     int       `json:"likes"`
	Comments  int       `json:"comments"`
	Shares    int       `json:"shares"`
	Views     int       `json:"views"`
	Timestamp time.Time `json:"timestamp"`
	TrackID   uuid.UUID `json:"trackId,omitzero"` // set for announcement posts
}
