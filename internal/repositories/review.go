package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/wesshacks/wesshacks/internal/logger"
	"github.com/wesshacks/wesshacks/internal/models"
)

type ReviewReadRepository struct {
	db *sqlx.DB
}

func NewReviewReadRepository(db *sqlx.DB) *ReviewReadRepository {
	return &ReviewReadRepository{db: db}
}

// GetByID returns a single review or nil when no such id exists.
func (r *ReviewReadRepository) GetByID(ctx context.Context, reviewID int64) (*models.Review, error) {
	const query = `
		SELECT review_id, house_address, rating, review_text, user_id, username, is_resident, created_at
		FROM house_reviews
		WHERE review_id = $1
	`

	var review models.Review
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &review, query, reviewID)

	logger.Log.Infow("query executed",
		"query", oneline(query),
		"args", []any{reviewID},
		"error", err,
	)

	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}

	return &review, nil
}

// ListByHouse returns all reviews for a house, newest first.
func (r *ReviewReadRepository) ListByHouse(ctx context.Context, houseAddress string) ([]models.Review, error) {
	const query = `
		SELECT review_id, house_address, rating, review_text, user_id, username, is_resident, created_at
		FROM house_reviews
		WHERE house_address = $1
		ORDER BY created_at DESC
	`

	var reviews []models.Review
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &reviews, query, houseAddress)

	logger.Log.Infow("query executed",
		"query", oneline(query),
		"args", []any{houseAddress},
		"rows", len(reviews),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return reviews, nil
}

// ListRecent returns the newest reviews across all houses, up to limit.
func (r *ReviewReadRepository) ListRecent(ctx context.Context, limit int) ([]models.Review, error) {
	const query = `
		SELECT review_id, house_address, rating, review_text, user_id, username, is_resident, created_at
		FROM house_reviews
		ORDER BY created_at DESC
		LIMIT $1
	`

	var reviews []models.Review
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &reviews, query, limit)

	logger.Log.Infow("query executed",
		"query", oneline(query),
		"args", []any{limit},
		"rows", len(reviews),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return reviews, nil
}

// AverageRating returns the mean rating for a house, 0 when it has no reviews.
func (r *ReviewReadRepository) AverageRating(ctx context.Context, houseAddress string) (float64, error) {
	const query = `
		SELECT COALESCE(AVG(rating), 0)
		FROM house_reviews
		WHERE house_address = $1
	`

	var avg float64
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &avg, query, houseAddress)

	logger.Log.Infow("query executed",
		"query", oneline(query),
		"args", []any{houseAddress},
		"result", avg,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return avg, nil
}

// CountByHouse returns the number of reviews for a house.
func (r *ReviewReadRepository) CountByHouse(ctx context.Context, houseAddress string) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM house_reviews
		WHERE house_address = $1
	`

	var count int
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &count, query, houseAddress)

	logger.Log.Infow("query executed",
		"query", oneline(query),
		"args", []any{houseAddress},
		"result", count,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return count, nil
}

type ReviewWriteRepository struct {
	db *sqlx.DB
}

func NewReviewWriteRepository(db *sqlx.DB) *ReviewWriteRepository {
	return &ReviewWriteRepository{db: db}
}

// Save inserts a new review and returns its generated id.
func (r *ReviewWriteRepository) Save(ctx context.Context, review models.Review) (int64, error) {
	const query = `
		INSERT INTO house_reviews (house_address, rating, review_text, user_id, username, is_resident, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING review_id
	`
	args := []any{review.HouseAddress, review.Rating, review.ReviewText, review.UserID, review.Username, review.IsResident}

	var reviewID int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &reviewID, query, args...)

	logger.Log.Infow("query executed",
		"query", oneline(query),
		"args", args,
		"result", reviewID,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return reviewID, nil
}

// Update changes the rating and body of a review. Address and authorship are immutable.
func (r *ReviewWriteRepository) Update(ctx context.Context, reviewID int64, rating float64, reviewText string) error {
	const query = `
		UPDATE house_reviews
		SET rating = $2, review_text = $3
		WHERE review_id = $1
	`
	args := []any{reviewID, rating, reviewText}

	_, err := executor(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Infow("query executed",
		"query", oneline(query),
		"args", args,
		"error", err,
	)

	return err
}

// Delete removes a review, reporting whether a row was deleted.
func (r *ReviewWriteRepository) Delete(ctx context.Context, reviewID int64) (bool, error) {
	const query = `
		DELETE FROM house_reviews
		WHERE review_id = $1
	`

	res, err := executor(ctx, r.db).ExecContext(ctx, query, reviewID)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", oneline(query),
		"args", []any{reviewID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
