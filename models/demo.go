package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const demoImageURL = "https://images.pexels.com/photos/1092730/pexels-photo-1092730.jpeg?auto=compress&cs=tinysrgb&w=400"

// DemoProducts returns the fixed fallback dataset used when the remote
// store is unreachable or unconfigured. The ids are well known so the UI
// collaborator can recognize demo mode rows.
func DemoProducts() []Product {
	now := time.Now().UTC()
	return []Product{
		{
			ID:               "demo-acai-300",
			Name:             "Açaí 300ml",
			Description:      "Açaí tradicional 300ml",
			Category:         "acai",
			Price:            decimal.NewFromFloat(15.90),
			ImageURL:         demoImageURL,
			IsActive:         true,
			AvailabilityType: AvailabilityAlways,
			CreatedAt:        now,
			UpdatedAt:        now,
		},
		{
			ID:               "demo-acai-500",
			Name:             "Açaí 500ml",
			Description:      "Açaí tradicional 500ml",
			Category:         "acai",
			Price:            decimal.NewFromFloat(22.90),
			ImageURL:         demoImageURL,
			IsActive:         true,
			AvailabilityType: AvailabilityAlways,
			CreatedAt:        now,
			UpdatedAt:        now,
		},
		{
			ID:               "demo-combo-casal",
			Name:             "Combo Casal",
			Description:      "1kg de açaí + milkshake 300ml.",
			Category:         "combo",
			Price:            decimal.NewFromFloat(49.99),
			ImageURL:         demoImageURL,
			IsActive:         true,
			AvailabilityType: AvailabilityAlways,
			CreatedAt:        now,
			UpdatedAt:        now,
		},
	}
}
