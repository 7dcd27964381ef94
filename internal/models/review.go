package models

import (
	"time"

	"github.com/google/uuid"
)

// Rating bounds; ratings move in half-point steps.
const (
	MinRating = 0.0
	MaxRating = 5.0
)

// MaxReviewTextLen caps the free-text body of a review.
const MaxReviewTextLen = 1000

// Review represents a house review row in the database
type Review struct {
	ReviewID     int64     `json:"review_id" db:"review_id"`         // Primary key
	HouseAddress string    `json:"house_address" db:"house_address"` // References houses.street_address
	Rating       float64   `json:"rating" db:"rating"`               // 0..5 in half-point steps
	ReviewText   string    `json:"review_text" db:"review_text"`     // Optional body
	UserID       uuid.UUID `json:"user_id" db:"user_id"`             // Author, ownership key
	Username     string    `json:"username" db:"username"`           // Author display name
	IsResident   bool      `json:"is_resident" db:"is_resident"`     // Lived there vs guest
	CreatedAt    time.Time `json:"created_at" db:"created_at"`       // Creation timestamp
}
