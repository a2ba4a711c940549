package entity

import "github.com/google/uuid"

// ShopItem is a static catalog entry the player can purchase.
// Like jobs, shop items are seeded once and read-only afterwards.
type ShopItem struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Category        string    `json:"category"` // lifestyle, studio, fashion
	Price           int       `json:"price"`
	FameBoost       int       `json:"fameBoost"`
	ReputationBoost int       `json:"reputationBoost"`
	FanBoost        int       `json:"fanBoost"`
	RequiredLevel   int       `json:"requiredLevel"`
	Icon            string    `json:"icon"`
}
