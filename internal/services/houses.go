package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/wesshacks/wesshacks/internal/logger"
	"github.com/wesshacks/wesshacks/internal/models"
)

// Error variables
var (
	ErrHouseNotFound    = errors.New("house not found")
	ErrHouseExists      = errors.New("house address already registered")
	ErrInvalidCapacity  = errors.New("capacity must be between 2 and 6")
	ErrInvalidBathrooms = errors.New("bathrooms value is not offered")
)

// HouseWriter defines write operations for houses.
type HouseWriter interface {
	Save(ctx context.Context, house models.HouseDB) error
}

// HousesService handles house registration.
type HousesService struct {
	reader      HouseGetter
	writer      HouseWriter
	kafkaWriter KafkaWriter
}

// NewHousesService creates a new HousesService instance.
func NewHousesService(reader HouseGetter, writer HouseWriter, kafkaWriter KafkaWriter) *HousesService {
	return &HousesService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// Register adds a new house to the catalog. Houses are never updated or
// deleted afterwards.
func (svc *HousesService) Register(ctx context.Context, userID uuid.UUID, username string, house models.HouseDB) error {
	if house.StreetAddress == "" {
		return ErrHouseAddressRequired
	}
	if house.Capacity < models.MinCapacity || house.Capacity > models.MaxCapacity {
		return ErrInvalidCapacity
	}
	if !allowedBathrooms(house.Bathrooms) {
		return ErrInvalidBathrooms
	}

	existing, err := svc.reader.GetByAddress(ctx, house.StreetAddress)
	if err != nil {
		logger.Log.Errorw("failed to check house exists", "house", house.StreetAddress, "err", err)
		return err
	}
	if existing != nil {
		return ErrHouseExists
	}

	house.CreatedBy = username

	if err := svc.writer.Save(ctx, house); err != nil {
		logger.Log.Errorw("failed to save house", "house", house.StreetAddress, "err", err)
		return err
	}

	publishEvent(ctx, svc.kafkaWriter, models.Event{
		EventID:      uuid.NewString(),
		Timestamp:    time.Now().Unix(),
		Operation:    models.EventHouseRegistered,
		HouseAddress: house.StreetAddress,
		UserID:       userID.String(),
	})

	return nil
}

func allowedBathrooms(v float64) bool {
	for _, allowed := range models.AllowedBathrooms {
		if v == allowed {
			return true
		}
	}
	return false
}
