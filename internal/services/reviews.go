package services

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/wesshacks/wesshacks/internal/logger"
	"github.com/wesshacks/wesshacks/internal/models"
)

// Error variables
var (
	ErrHouseAddressRequired = errors.New("house address is required")
	ErrInvalidRating        = errors.New("valid rating (0-5) is required")
	ErrReviewTextTooLong    = errors.New("review text exceeds maximum length")
	ErrReviewNotFound       = errors.New("review not found")
	ErrReviewForbidden      = errors.New("review belongs to another user")
)

// DefaultReviewLimit bounds the all-reviews listing when no limit is given.
const DefaultReviewLimit = 20

// ReviewReader defines read operations for reviews.
type ReviewReader interface {
	GetByID(ctx context.Context, reviewID int64) (*models.Review, error)
	ListByHouse(ctx context.Context, houseAddress string) ([]models.Review, error)
	ListRecent(ctx context.Context, limit int) ([]models.Review, error)
}

// ReviewWriter defines write operations for reviews.
type ReviewWriter interface {
	Save(ctx context.Context, review models.Review) (int64, error)
	Update(ctx context.Context, reviewID int64, rating float64, reviewText string) error
	Delete(ctx context.Context, reviewID int64) (bool, error)
}

// HouseGetter looks up a single house by address.
type HouseGetter interface {
	GetByAddress(ctx context.Context, address string) (*models.HouseDB, error)
}

// ReviewsService handles review listing, creation, update and deletion.
type ReviewsService struct {
	reader      ReviewReader
	writer      ReviewWriter
	houses      HouseGetter
	kafkaWriter KafkaWriter
}

// NewReviewsService creates a new ReviewsService instance.
func NewReviewsService(reader ReviewReader, writer ReviewWriter, houses HouseGetter, kafkaWriter KafkaWriter) *ReviewsService {
	return &ReviewsService{
		reader:      reader,
		writer:      writer,
		houses:      houses,
		kafkaWriter: kafkaWriter,
	}
}

// GetByID returns a single review.
func (svc *ReviewsService) GetByID(ctx context.Context, reviewID int64) (*models.Review, error) {
	review, err := svc.reader.GetByID(ctx, reviewID)
	if err != nil {
		logger.Log.Errorw("failed to get review", "review_id", reviewID, "err", err)
		return nil, err
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}
	return review, nil
}

// ListByHouse returns all reviews for a house, newest first.
func (svc *ReviewsService) ListByHouse(ctx context.Context, houseAddress string) ([]models.Review, error) {
	reviews, err := svc.reader.ListByHouse(ctx, houseAddress)
	if err != nil {
		logger.Log.Errorw("failed to list reviews", "house", houseAddress, "err", err)
		return nil, err
	}
	return reviews, nil
}

// ListRecent returns the newest reviews across all houses.
func (svc *ReviewsService) ListRecent(ctx context.Context, limit int) ([]models.Review, error) {
	if limit <= 0 {
		limit = DefaultReviewLimit
	}
	reviews, err := svc.reader.ListRecent(ctx, limit)
	if err != nil {
		logger.Log.Errorw("failed to list recent reviews", "limit", limit, "err", err)
		return nil, err
	}
	return reviews, nil
}

// Create validates and stores a new review, returning the generated id.
func (svc *ReviewsService) Create(ctx context.Context, userID uuid.UUID, username string, review models.Review) (int64, error) {
	if review.HouseAddress == "" {
		return 0, ErrHouseAddressRequired
	}
	if !validRating(review.Rating) {
		return 0, ErrInvalidRating
	}
	if len(review.ReviewText) > models.MaxReviewTextLen {
		return 0, ErrReviewTextTooLong
	}

	house, err := svc.houses.GetByAddress(ctx, review.HouseAddress)
	if err != nil {
		logger.Log.Errorw("failed to check house exists", "house", review.HouseAddress, "err", err)
		return 0, err
	}
	if house == nil {
		return 0, ErrHouseNotFound
	}

	review.UserID = userID
	review.Username = username

	reviewID, err := svc.writer.Save(ctx, review)
	if err != nil {
		logger.Log.Errorw("failed to save review", "house", review.HouseAddress, "err", err)
		return 0, err
	}

	publishEvent(ctx, svc.kafkaWriter, models.Event{
		EventID:      uuid.NewString(),
		Timestamp:    time.Now().Unix(),
		Operation:    models.EventReviewCreated,
		HouseAddress: review.HouseAddress,
		UserID:       userID.String(),
		Rating:       review.Rating,
	})

	return reviewID, nil
}

// Update changes the rating and body of the caller's own review.
func (svc *ReviewsService) Update(ctx context.Context, userID uuid.UUID, reviewID int64, rating float64, reviewText string) error {
	if !validRating(rating) {
		return ErrInvalidRating
	}
	if len(reviewText) > models.MaxReviewTextLen {
		return ErrReviewTextTooLong
	}

	review, err := svc.reader.GetByID(ctx, reviewID)
	if err != nil {
		logger.Log.Errorw("failed to get review", "review_id", reviewID, "err", err)
		return err
	}
	if review == nil {
		return ErrReviewNotFound
	}
	if review.UserID != userID {
		return ErrReviewForbidden
	}

	if err := svc.writer.Update(ctx, reviewID, rating, reviewText); err != nil {
		logger.Log.Errorw("failed to update review", "review_id", reviewID, "err", err)
		return err
	}

	return nil
}

// Delete removes the caller's own review.
func (svc *ReviewsService) Delete(ctx context.Context, userID uuid.UUID, reviewID int64) error {
	review, err := svc.reader.GetByID(ctx, reviewID)
	if err != nil {
		logger.Log.Errorw("failed to get review", "review_id", reviewID, "err", err)
		return err
	}
	if review == nil {
		return ErrReviewNotFound
	}
	if review.UserID != userID {
		return ErrReviewForbidden
	}

	deleted, err := svc.writer.Delete(ctx, reviewID)
	if err != nil {
		logger.Log.Errorw("failed to delete review", "review_id", reviewID, "err", err)
		return err
	}
	if !deleted {
		return ErrReviewNotFound
	}

	return nil
}

// validRating accepts 0..5 in half-point steps.
func validRating(rating float64) bool {
	if rating < models.MinRating || rating > models.MaxRating {
		return false
	}
	return math.Mod(rating*2, 1) == 0
}
