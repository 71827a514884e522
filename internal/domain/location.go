package domain

import "time"

// Kiosk is a campus pickup point.
type Kiosk struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Campus    string    `json:"campus"`
	Address   *string   `json:"address"`
	IsActive  Flag      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CloudKitchen is a delivery-only kitchen serving a city.
type CloudKitchen struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	City           string    `json:"city"`
	Address        *string   `json:"address"`
	DeliveryRadius *float64  `json:"delivery_radius"`
	IsActive       Flag      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
