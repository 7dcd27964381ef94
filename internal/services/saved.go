package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/wesshacks/wesshacks/internal/logger"
	"github.com/wesshacks/wesshacks/internal/models"
)

// ErrHouseNotSaved is returned when unsaving a house absent from the list.
var ErrHouseNotSaved = errors.New("house was not in saved list")

// SavedHouseReader defines read operations for saved houses.
type SavedHouseReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.SavedHouse, error)
}

// SavedHouseWriter defines write operations for saved houses.
type SavedHouseWriter interface {
	Save(ctx context.Context, userID uuid.UUID, houseAddress string) (bool, error)
	Delete(ctx context.Context, userID uuid.UUID, houseAddress string) (bool, error)
}

// SavedService handles the user's saved-houses list.
type SavedService struct {
	reader SavedHouseReader
	writer SavedHouseWriter
	houses HouseGetter
}

// NewSavedService creates a new SavedService instance.
func NewSavedService(reader SavedHouseReader, writer SavedHouseWriter, houses HouseGetter) *SavedService {
	return &SavedService{
		reader: reader,
		writer: writer,
		houses: houses,
	}
}

// List returns the user's saved houses, most recently saved first.
func (svc *SavedService) List(ctx context.Context, userID uuid.UUID) ([]models.SavedHouse, error) {
	houses, err := svc.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list saved houses", "user_id", userID, "err", err)
		return nil, err
	}

	for i := range houses {
		houses[i].AvgRating = roundRating(houses[i].AvgRating)
	}

	return houses, nil
}

// Save bookmarks a house. Saving an already-saved house succeeds without
// creating a duplicate; the returned bool reports whether a row was created.
func (svc *SavedService) Save(ctx context.Context, userID uuid.UUID, houseAddress string) (bool, error) {
	if houseAddress == "" {
		return false, ErrHouseAddressRequired
	}

	house, err := svc.houses.GetByAddress(ctx, houseAddress)
	if err != nil {
		logger.Log.Errorw("failed to check house exists", "house", houseAddress, "err", err)
		return false, err
	}
	if house == nil {
		return false, ErrHouseNotFound
	}

	created, err := svc.writer.Save(ctx, userID, houseAddress)
	if err != nil {
		logger.Log.Errorw("failed to save house", "house", houseAddress, "user_id", userID, "err", err)
		return false, err
	}

	return created, nil
}

// Unsave removes a bookmark, failing when the house was never saved.
func (svc *SavedService) Unsave(ctx context.Context, userID uuid.UUID, houseAddress string) error {
	if houseAddress == "" {
		return ErrHouseAddressRequired
	}

	deleted, err := svc.writer.Delete(ctx, userID, houseAddress)
	if err != nil {
		logger.Log.Errorw("failed to unsave house", "house", houseAddress, "user_id", userID, "err", err)
		return err
	}
	if !deleted {
		return ErrHouseNotSaved
	}

	return nil
}
