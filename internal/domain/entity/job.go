package entity

import "github.com/google/uuid"

// Job is a static catalog entry describing work the player can take.
// Jobs are seeded once at store initialization and read-only afterwards.
type Job struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"` // entry, mid, rap-related
	MoneyReward  int       `json:"moneyReward"`
	EnergyReward int       `json:"energyReward"`
	EnergyCost   int       `json:"energyCost"`
	FameReward   int       `json:"fameReward"`
	RequiredFame int       `json:"requiredFame"`
	IsActive     bool      `json:"isActive"`
}
