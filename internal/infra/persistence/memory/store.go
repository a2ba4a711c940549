// Package memory implements the repository contracts on process-local
// maps. State lives for the lifetime of the process only; the client
// keeps its own snapshot and can re-create state after a restart.
package memory

import (
	"sync"
	"time"

	"rapmaster/internal/domain/entity"

	"github.com/google/uuid"
)

// Store holds every record collection behind a single lock. Profiles are
// indexed both by profile ID and, uniquely, by the owning user ID.
type Store struct {
	mu sync.RWMutex

	profiles      map[uuid.UUID]*entity.Profile
	profileByUser map[uuid.UUID]uuid.UUID
	users         map[uuid.UUID]*entity.User
	userByName    map[string]uuid.UUID
	jobs          []entity.Job
	shopItems     []entity.ShopItem

	now func() time.Time
}

// NewStore creates a Store with the default job and shop catalogs seeded.
func NewStore() *Store {
	return &Store{
		profiles:      make(map[uuid.UUID]*entity.Profile),
		profileByUser: make(map[uuid.UUID]uuid.UUID),
		users:         make(map[uuid.UUID]*entity.User),
		userByName:    make(map[string]uuid.UUID),
		jobs:          seedJobs(),
		shopItems:     seedShopItems(),
		now:           time.Now,
	}
}
