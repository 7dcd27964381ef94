package models

import "time"

// Capacity bounds for a registered house.
const (
	MinCapacity = 2
	MaxCapacity = 6
)

// Bathrooms values offered on the registration form.
var AllowedBathrooms = []float64{1, 1.5, 2, 2.5, 3}

// HouseDB represents a house row in the database
type HouseDB struct {
	StreetAddress string    `json:"street_address" db:"street_address"` // Primary key
	Capacity      int       `json:"capacity" db:"capacity"`             // Number of residents the house fits
	Bathrooms     float64   `json:"bathrooms" db:"bathrooms"`           // Bathroom count, half steps allowed
	URL           *string   `json:"url" db:"url"`                       // Optional external listing URL
	CreatedBy     string    `json:"created_by" db:"created_by"`         // Username of the registering user
	CreatedAt     time.Time `json:"created_at" db:"created_at"`         // Creation timestamp
}

// House is a house annotated with the derived listing fields.
type House struct {
	HouseDB
	IsQuiet      bool    `json:"is_quiet"`
	AvgRating    float64 `json:"avg_rating"`
	ReviewsCount int     `json:"reviews_count"`
	IsSaved      *bool   `json:"is_saved,omitempty"`
}
