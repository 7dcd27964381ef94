package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/wesshacks/wesshacks/internal/logger"
	"github.com/wesshacks/wesshacks/internal/models"
)

// HouseFilter narrows the house listing. Values are taken as opaque strings;
// nil means the filter is absent.
type HouseFilter struct {
	Capacity  *string // exact match on capacity
	Bathrooms *string // exact match on bathroom count
	Search    *string // case-insensitive substring match on the address
	Address   *string // exact match on the address
}

type HouseReadRepository struct {
	db *sqlx.DB
}

func NewHouseReadRepository(db *sqlx.DB) *HouseReadRepository {
	return &HouseReadRepository{db: db}
}

// List returns houses matching every supplied filter, ordered by address.
func (r *HouseReadRepository) List(ctx context.Context, filter HouseFilter) ([]models.HouseDB, error) {
	query := `
		SELECT street_address, capacity, bathrooms, url, created_by, created_at
		FROM houses
		WHERE 1=1
	`
	var args []any

	if filter.Capacity != nil {
		args = append(args, *filter.Capacity)
		query += fmt.Sprintf(" AND capacity::VARCHAR = $%d", len(args))
	}
	if filter.Bathrooms != nil {
		args = append(args, *filter.Bathrooms)
		query += fmt.Sprintf(" AND bathrooms::VARCHAR = $%d", len(args))
	}
	if filter.Search != nil {
		args = append(args, "%"+*filter.Search+"%")
		query += fmt.Sprintf(" AND street_address ILIKE $%d", len(args))
	}
	if filter.Address != nil {
		args = append(args, *filter.Address)
		query += fmt.Sprintf(" AND street_address = $%d", len(args))
	}

	query += " ORDER BY street_address"

	var houses []models.HouseDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &houses, query, args...)

	logger.Log.Infow("query executed",
		"query", oneline(query),
		"args", args,
		"rows", len(houses),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return houses, nil
}

// GetByAddress returns a single house or nil when no such address exists.
func (r *HouseReadRepository) GetByAddress(ctx context.Context, address string) (*models.HouseDB, error) {
	const query = `
		SELECT street_address, capacity, bathrooms, url, created_by, created_at
		FROM houses
		WHERE street_address = $1
	`

	var house models.HouseDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &house, query, address)

	logger.Log.Infow("query executed",
		"query", oneline(query),
		"args", []any{address},
		"error", err,
	)

	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}

	return &house, nil
}

type HouseWriteRepository struct {
	db *sqlx.DB
}

func NewHouseWriteRepository(db *sqlx.DB) *HouseWriteRepository {
	return &HouseWriteRepository{db: db}
}

// Save inserts a new house. The address must not already exist.
func (r *HouseWriteRepository) Save(ctx context.Context, house models.HouseDB) error {
	const query = `
		INSERT INTO houses (street_address, capacity, bathrooms, url, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`
	args := []any{house.StreetAddress, house.Capacity, house.Bathrooms, house.URL, house.CreatedBy}

	_, err := executor(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Infow("query executed",
		"query", oneline(query),
		"args", args,
		"error", err,
	)

	return err
}
