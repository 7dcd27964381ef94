package models

import (
	"time"

	"github.com/google/uuid"
)

// SavedHouseDB represents a user's bookmark of a house
type SavedHouseDB struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	HouseAddress string    `json:"house_address" db:"house_address"`
	SavedAt      time.Time `json:"saved_at" db:"saved_at"`
}

// SavedHouse is a saved house joined to its house row plus rating aggregates.
type SavedHouse struct {
	HouseDB
	AvgRating    float64   `json:"avg_rating" db:"avg_rating"`
	ReviewsCount int       `json:"reviews_count" db:"reviews_count"`
	SavedAt      time.Time `json:"saved_at" db:"saved_at"`
}
