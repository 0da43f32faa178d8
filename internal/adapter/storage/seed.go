package storage

import (
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DemoCatalog returns the demo products used to seed an empty store.
// Ids are fixed so repeated runs against a wiped database stay stable.
func DemoCatalog() []domain.Product {
	return []domain.Product{
		{
			ProductID:       "0c4b4f0e-9d6a-4a8e-8f2b-6a1f6f2d9b01",
			Name:            "Wireless Headphones",
			Description:     "Over-ear wireless headphones with active noise cancelling",
			Price:           decimal.NewFromFloat(89.99),
			Image:           "/images/wireless-headphones.jpg",
			Category:        "Electronics",
			Brand:           "SoundCore",
			Rating:          4.5,
			DeliveryOptions: []string{"standard", "express"},
		},
		{
			ProductID:       "0c4b4f0e-9d6a-4a8e-8f2b-6a1f6f2d9b02",
			Name:            "Smart Watch",
			Description:     "Fitness tracking smart watch with heart-rate monitor",
			Price:           decimal.NewFromFloat(149.50),
			Image:           "/images/smart-watch.jpg",
			Category:        "Electronics",
			Brand:           "PulseFit",
			Rating:          4.2,
			DeliveryOptions: []string{"standard"},
		},
		{
			ProductID:       "0c4b4f0e-9d6a-4a8e-8f2b-6a1f6f2d9b03",
			Name:            "Espresso Machine",
			Description:     "Compact 15-bar espresso machine with milk frother",
			Price:           decimal.NewFromFloat(219.00),
			Image:           "/images/espresso-machine.jpg",
			Category:        "Home & Kitchen",
			Brand:           "BrewMaster",
			Rating:          4.7,
			DeliveryOptions: []string{"standard", "express"},
		},
		{
			ProductID:       "0c4b4f0e-9d6a-4a8e-8f2b-6a1f6f2d9b04",
			Name:            "Running Shoes",
			Description:     "Lightweight cushioned running shoes",
			Price:           decimal.NewFromFloat(74.95),
			Image:           "/images/running-shoes.jpg",
			Category:        "Sports",
			Brand:           "Stride",
			Rating:          4.1,
			DeliveryOptions: []string{"standard"},
		},
		{
			ProductID:       "0c4b4f0e-9d6a-4a8e-8f2b-6a1f6f2d9b05",
			Name:            "Yoga Mat",
			Description:     "Non-slip 6mm yoga mat with carry strap",
			Price:           decimal.NewFromFloat(24.99),
			Image:           "/images/yoga-mat.jpg",
			Category:        "Sports",
			Brand:           "Stride",
			Rating:          4.4,
			DeliveryOptions: []string{"standard", "express"},
		},
		{
			ProductID:       "0c4b4f0e-9d6a-4a8e-8f2b-6a1f6f2d9b06",
			Name:            "Mechanical Keyboard",
			Description:     "Tenkeyless mechanical keyboard with hot-swappable switches",
			Price:           decimal.NewFromFloat(119.00),
			Image:           "/images/mechanical-keyboard.jpg",
			Category:        "Electronics",
			Brand:           "KeyForge",
			Rating:          4.8,
			DeliveryOptions: []string{"standard"},
		},
		{
			ProductID:       "0c4b4f0e-9d6a-4a8e-8f2b-6a1f6f2d9b07",
			Name:            "Cast Iron Skillet",
			Description:     "Pre-seasoned 10-inch cast iron skillet",
			Price:           decimal.NewFromFloat(34.50),
			Image:           "/images/cast-iron-skillet.jpg",
			Category:        "Home & Kitchen",
			Brand:           "BrewMaster",
			Rating:          4.6,
			DeliveryOptions: []string{"standard", "express"},
		},
		{
			ProductID:       "0c4b4f0e-9d6a-4a8e-8f2b-6a1f6f2d9b08",
			Name:            "Desk Lamp",
			Description:     "LED desk lamp with adjustable color temperature",
			Price:           decimal.NewFromFloat(39.99),
			Image:           "/images/desk-lamp.jpg",
			Category:        "Home & Kitchen",
			Brand:           "Lumen",
			Rating:          4.0,
			DeliveryOptions: []string{"standard"},
		},
	}
}
