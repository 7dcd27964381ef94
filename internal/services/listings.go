package services

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/wesshacks/wesshacks/internal/logger"
	"github.com/wesshacks/wesshacks/internal/models"
	"github.com/wesshacks/wesshacks/internal/repositories"
)

// quietStreets is the fixed list of street-name substrings used as a noise
// proxy. Matching is case-insensitive; any match makes the house quiet.
var quietStreets = []string{
	"Brainerd Ave",
	"Fairview Ave",
	"High St",
	"Home Ave",
	"Huber Ave",
	"Knowles Ave",
	"Lawn Ave",
	"Williams St",
}

// IsQuietStreet reports whether the address sits on a quiet street.
func IsQuietStreet(address string) bool {
	lower := strings.ToLower(address)
	for _, street := range quietStreets {
		if strings.Contains(lower, strings.ToLower(street)) {
			return true
		}
	}
	return false
}

// Noise preference values.
const (
	NoiseQuiet = "quiet"
	NoiseLoud  = "loud"
)

// SortPolicy selects the ordering of a house listing. The two policies are
// alternatives, never combined.
type SortPolicy string

const (
	// SortByAddress orders lexicographically by street address.
	SortByAddress SortPolicy = "address"
	// SortReviewedFirst puts houses with reviews before houses without,
	// each partition ordered lexicographically.
	SortReviewedFirst SortPolicy = "reviewed_first"
)

// ListingFilter carries the caller-supplied listing criteria. Empty strings
// mean the filter is absent; unrecognized values are ignored rather than
// rejected.
type ListingFilter struct {
	Capacity  string
	Bathrooms string
	Search    string
	Address   string
	Noise     string
	Sort      SortPolicy
}

// HouseLister defines the house row selection used by the listing.
type HouseLister interface {
	List(ctx context.Context, filter repositories.HouseFilter) ([]models.HouseDB, error)
}

// ReviewAggregator provides the per-house review lookups.
type ReviewAggregator interface {
	AverageRating(ctx context.Context, houseAddress string) (float64, error)
	CountByHouse(ctx context.Context, houseAddress string) (int, error)
}

// SavedChecker reports whether a user has saved a house.
type SavedChecker interface {
	IsSaved(ctx context.Context, userID uuid.UUID, houseAddress string) (bool, error)
}

// ListingsService produces the annotated, filtered, ordered house listing.
type ListingsService struct {
	houses  HouseLister
	reviews ReviewAggregator
	saved   SavedChecker
}

// NewListingsService creates a new ListingsService instance.
func NewListingsService(houses HouseLister, reviews ReviewAggregator, saved SavedChecker) *ListingsService {
	return &ListingsService{
		houses:  houses,
		reviews: reviews,
		saved:   saved,
	}
}

// ListHouses returns houses satisfying every supplied criterion, each
// annotated with is_quiet, avg_rating, reviews_count and, when callerID is
// known, is_saved. The noise preference is applied after quiet classification,
// never pushed into row selection.
func (s *ListingsService) ListHouses(ctx context.Context, filter ListingFilter, callerID *uuid.UUID) ([]models.House, error) {
	rows, err := s.houses.List(ctx, rowFilter(filter))
	if err != nil {
		logger.Log.Errorw("failed to list houses", "err", err)
		return nil, err
	}

	noise := filter.Noise
	if noise != NoiseQuiet && noise != NoiseLoud {
		noise = ""
	}

	houses := make([]models.House, 0, len(rows))
	for _, row := range rows {
		isQuiet := IsQuietStreet(row.StreetAddress)

		if (noise == NoiseQuiet && !isQuiet) || (noise == NoiseLoud && isQuiet) {
			continue
		}

		avg, err := s.reviews.AverageRating(ctx, row.StreetAddress)
		if err != nil {
			logger.Log.Errorw("failed to get average rating", "house", row.StreetAddress, "err", err)
			return nil, err
		}

		count, err := s.reviews.CountByHouse(ctx, row.StreetAddress)
		if err != nil {
			logger.Log.Errorw("failed to count reviews", "house", row.StreetAddress, "err", err)
			return nil, err
		}

		house := models.House{
			HouseDB:      row,
			IsQuiet:      isQuiet,
			AvgRating:    roundRating(avg),
			ReviewsCount: count,
		}

		if callerID != nil {
			saved, err := s.saved.IsSaved(ctx, *callerID, row.StreetAddress)
			if err != nil {
				logger.Log.Errorw("failed to check saved status", "house", row.StreetAddress, "err", err)
				return nil, err
			}
			house.IsSaved = &saved
		}

		houses = append(houses, house)
	}

	if filter.Sort == SortReviewedFirst {
		// Rows arrive lexicographic; a stable partition keeps each half ordered.
		sort.SliceStable(houses, func(i, j int) bool {
			return houses[i].ReviewsCount > 0 && houses[j].ReviewsCount == 0
		})
	}

	return houses, nil
}

// rowFilter converts the listing criteria to row-selection predicates.
// Blank values fail open.
func rowFilter(filter ListingFilter) repositories.HouseFilter {
	var f repositories.HouseFilter
	if v := strings.TrimSpace(filter.Capacity); v != "" {
		f.Capacity = &v
	}
	if v := strings.TrimSpace(filter.Bathrooms); v != "" {
		f.Bathrooms = &v
	}
	if v := strings.TrimSpace(filter.Search); v != "" {
		f.Search = &v
	}
	if v := strings.TrimSpace(filter.Address); v != "" {
		f.Address = &v
	}
	return f
}

// roundRating rounds to one decimal place.
func roundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}
