package memory

import (
	"rapmaster/internal/domain/entity"

	"github.com/google/uuid"
)

// seedJobs builds the default job catalog. IDs are assigned at process
// start; clients discover them through the list endpoints.
func seedJobs() []entity.Job {
	return []entity.Job{
		{
			ID:           uuid.New(),
			Title:        "Fast Food Worker",
			Description:  "Easy work, basic pay",
			Category:     "entry",
			MoneyReward:  20,
			EnergyReward: 5,
			EnergyCost:   10,
			IsActive:     true,
		},
		{
			ID:           uuid.New(),
			Title:        "Delivery Driver",
			Description:  "Drive around town",
			Category:     "entry",
			MoneyReward:  35,
			EnergyReward: 3,
			EnergyCost:   15,
			IsActive:     true,
		},
		{
			ID:           uuid.New(),
			Title:        "Studio Assistant",
			Description:  "Help in recording studios",
			Category:     "mid",
			MoneyReward:  75,
			EnergyCost:   20,
			FameReward:   2,
			RequiredFame: 10,
			IsActive:     true,
		},
	}
}

// seedShopItems builds the default shop catalog.
func seedShopItems() []entity.ShopItem {
	return []entity.ShopItem{
		// Lifestyle - cars
		{ID: uuid.New(), Name: "Used Car", Description: "Basic transportation", Category: "lifestyle", Price: 500, ReputationBoost: 5, Icon: "🚗"},
		{ID: uuid.New(), Name: "Sports Car", Description: "Fast and flashy ride", Category: "lifestyle", Price: 15000, FameBoost: 10, ReputationBoost: 25, FanBoost: 50, Icon: "🏎️"},
		{ID: uuid.New(), Name: "Luxury SUV", Description: "High-end status symbol", Category: "lifestyle", Price: 35000, FameBoost: 15, ReputationBoost: 40, FanBoost: 100, Icon: "🚙"},
		{ID: uuid.New(), Name: "Supercar", Description: "Ultimate flex machine", Category: "lifestyle", Price: 100000, FameBoost: 30, ReputationBoost: 75, FanBoost: 300, Icon: "🏁"},

		// Lifestyle - homes
		{ID: uuid.New(), Name: "Apartment", Description: "Your first place", Category: "lifestyle", Price: 2000, FameBoost: 5, ReputationBoost: 10, Icon: "🏠"},
		{ID: uuid.New(), Name: "Studio Loft", Description: "Perfect for creating music", Category: "lifestyle", Price: 25000, FameBoost: 20, ReputationBoost: 30, FanBoost: 75, Icon: "🏢"},
		{ID: uuid.New(), Name: "Penthouse", Description: "Top floor luxury living", Category: "lifestyle", Price: 75000, FameBoost: 40, ReputationBoost: 60, FanBoost: 200, Icon: "🏘️"},
		{ID: uuid.New(), Name: "Mansion", Description: "Ultimate celebrity home", Category: "lifestyle", Price: 500000, FameBoost: 100, ReputationBoost: 150, FanBoost: 1000, Icon: "🏰"},

		// Fashion
		{ID: uuid.New(), Name: "Designer Sneakers", Description: "Limited edition kicks", Category: "fashion", Price: 800, FameBoost: 3, ReputationBoost: 5, FanBoost: 10, Icon: "👟"},
		{ID: uuid.New(), Name: "Diamond Chain", Description: "Bling that shines", Category: "fashion", Price: 5000, FameBoost: 8, ReputationBoost: 15, FanBoost: 25, Icon: "💎"},
		{ID: uuid.New(), Name: "Custom Grillz", Description: "Gold teeth style", Category: "fashion", Price: 3000, FameBoost: 6, ReputationBoost: 12, FanBoost: 20, Icon: "😬"},
		{ID: uuid.New(), Name: "Designer Watch", Description: "Luxury timepiece", Category: "fashion", Price: 12000, FameBoost: 12, ReputationBoost: 25, FanBoost: 40, Icon: "⌚"},
		{ID: uuid.New(), Name: "Custom Jacket", Description: "Personalized style", Category: "fashion", Price: 2500, FameBoost: 5, ReputationBoost: 10, FanBoost: 15, Icon: "🧥"},

		// Studio equipment
		{ID: uuid.New(), Name: "Basic Microphone", Description: "Improves track quality", Category: "studio", Price: 200, Icon: "🎤"},
		{ID: uuid.New(), Name: "Professional Microphone", Description: "High-quality recording", Category: "studio", Price: 1500, ReputationBoost: 5, Icon: "🎙️"},
		{ID: uuid.New(), Name: "Mixing Board", Description: "Advanced audio control", Category: "studio", Price: 5000, ReputationBoost: 10, Icon: "🎛️"},
		{ID: uuid.New(), Name: "Studio Monitors", Description: "Perfect sound clarity", Category: "studio", Price: 3000, ReputationBoost: 8, Icon: "🔊"},
	}
}
