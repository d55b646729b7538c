package impl

import (
	"canteen/config"
)

func newTestConfig() *config.Config {
	return &config.Config{
		Loyalty: &config.LoyaltyConfig{
			AccrualRate:   0.10,
			MinRedemption: 50,
			MaxRedemption: 10000,
			PointValue:    0.1,
		},
		Order: &config.OrderConfig{
			MaxQuantity:   10,
			NumberRetries: 3,
		},
	}
}
