package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/wesshacks/wesshacks/internal/logger"
	"github.com/wesshacks/wesshacks/internal/models"
)

type SavedHouseReadRepository struct {
	db *sqlx.DB
}

func NewSavedHouseReadRepository(db *sqlx.DB) *SavedHouseReadRepository {
	return &SavedHouseReadRepository{db: db}
}

// ListByUser returns the user's saved houses joined to the catalog, with
// rating aggregates, most recently saved first.
func (r *SavedHouseReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.SavedHouse, error) {
	const query = `
		SELECT h.street_address, h.capacity, h.bathrooms, h.url, h.created_by, h.created_at,
		       COALESCE((SELECT AVG(rating) FROM house_reviews WHERE house_address = h.street_address), 0) AS avg_rating,
		       (SELECT COUNT(*) FROM house_reviews WHERE house_address = h.street_address) AS reviews_count,
		       s.saved_at
		FROM saved_houses s
		JOIN houses h ON s.house_address = h.street_address
		WHERE s.user_id = $1
		ORDER BY s.saved_at DESC
	`

	var houses []models.SavedHouse
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &houses, query, userID)

	logger.Log.Infow("query executed",
		"query", oneline(query),
		"args", []any{userID},
		"rows", len(houses),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return houses, nil
}

// IsSaved reports whether the user has saved the house.
func (r *SavedHouseReadRepository) IsSaved(ctx context.Context, userID uuid.UUID, houseAddress string) (bool, error) {
	const query = `
		SELECT COUNT(*)
		FROM saved_houses
		WHERE user_id = $1 AND house_address = $2
	`

	var count int
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &count, query, userID, houseAddress)

	logger.Log.Infow("query executed",
		"query", oneline(query),
		"args", []any{userID, houseAddress},
		"result", count,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

type SavedHouseWriteRepository struct {
	db *sqlx.DB
}

func NewSavedHouseWriteRepository(db *sqlx.DB) *SavedHouseWriteRepository {
	return &SavedHouseWriteRepository{db: db}
}

// Save bookmarks a house for a user. The insert is idempotent; the returned
// bool reports whether a new row was created.
func (r *SavedHouseWriteRepository) Save(ctx context.Context, userID uuid.UUID, houseAddress string) (bool, error) {
	const query = `
		INSERT INTO saved_houses (user_id, house_address, saved_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, house_address) DO NOTHING
	`
	args := []any{userID, houseAddress}

	res, err := executor(ctx, r.db).ExecContext(ctx, query, args...)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", oneline(query),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

// Delete removes a bookmark, reporting whether a row was deleted.
func (r *SavedHouseWriteRepository) Delete(ctx context.Context, userID uuid.UUID, houseAddress string) (bool, error) {
	const query = `
		DELETE FROM saved_houses
		WHERE user_id = $1 AND house_address = $2
	`
	args := []any{userID, houseAddress}

	res, err := executor(ctx, r.db).ExecContext(ctx, query, args...)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", oneline(query),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
