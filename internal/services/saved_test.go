package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/wesshacks/wesshacks/internal/models"
	"github.com/wesshacks/wesshacks/internal/services"
)

func TestSavedService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockSavedHouseReader(ctrl)
	mockWriter := services.NewMockSavedHouseWriter(ctrl)
	mockHouses := services.NewMockHouseGetter(ctrl)

	svc := services.NewSavedService(mockReader, mockWriter, mockHouses)

	userID := uuid.New()

	t.Run("rounds aggregates to one decimal", func(t *testing.T) {
		mockReader.EXPECT().
			ListByUser(gomock.Any(), userID).
			Return([]models.SavedHouse{
				{HouseDB: models.HouseDB{StreetAddress: "12 Fairview Ave"}, AvgRating: 4.666666, ReviewsCount: 3},
				{HouseDB: models.HouseDB{StreetAddress: "100 Cross St"}, AvgRating: 0, ReviewsCount: 0},
			}, nil)

		houses, err := svc.List(context.Background(), userID)

		assert.NoError(t, err)
		assert.Len(t, houses, 2)
		assert.Equal(t, 4.7, houses[0].AvgRating)
		assert.Equal(t, 0.0, houses[1].AvgRating)
	})

	t.Run("reader error", func(t *testing.T) {
		mockReader.EXPECT().
			ListByUser(gomock.Any(), userID).
			Return(nil, errors.New("db error"))

		houses, err := svc.List(context.Background(), userID)

		assert.Error(t, err)
		assert.Nil(t, houses)
	})
}

func TestSavedService_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockSavedHouseReader(ctrl)
	mockWriter := services.NewMockSavedHouseWriter(ctrl)
	mockHouses := services.NewMockHouseGetter(ctrl)

	svc := services.NewSavedService(mockReader, mockWriter, mockHouses)

	userID := uuid.New()
	address := "12 Fairview Ave"

	t.Run("first save creates a row", func(t *testing.T) {
		mockHouses.EXPECT().
			GetByAddress(gomock.Any(), address).
			Return(&models.HouseDB{StreetAddress: address}, nil)
		mockWriter.EXPECT().
			Save(gomock.Any(), userID, address).
			Return(true, nil)

		created, err := svc.Save(context.Background(), userID, address)

		assert.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("saving again succeeds without creating", func(t *testing.T) {
		mockHouses.EXPECT().
			GetByAddress(gomock.Any(), address).
			Return(&models.HouseDB{StreetAddress: address}, nil)
		mockWriter.EXPECT().
			Save(gomock.Any(), userID, address).
			Return(false, nil)

		created, err := svc.Save(context.Background(), userID, address)

		assert.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("missing address", func(t *testing.T) {
		created, err := svc.Save(context.Background(), userID, "")

		assert.ErrorIs(t, err, services.ErrHouseAddressRequired)
		assert.False(t, created)
	})

	t.Run("unknown house", func(t *testing.T) {
		mockHouses.EXPECT().
			GetByAddress(gomock.Any(), address).
			Return(nil, nil)

		created, err := svc.Save(context.Background(), userID, address)

		assert.ErrorIs(t, err, services.ErrHouseNotFound)
		assert.False(t, created)
	})
}

func TestSavedService_Unsave(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockSavedHouseReader(ctrl)
	mockWriter := services.NewMockSavedHouseWriter(ctrl)
	mockHouses := services.NewMockHouseGetter(ctrl)

	svc := services.NewSavedService(mockReader, mockWriter, mockHouses)

	userID := uuid.New()
	address := "12 Fairview Ave"

	t.Run("removes the bookmark", func(t *testing.T) {
		mockWriter.EXPECT().
			Delete(gomock.Any(), userID, address).
			Return(true, nil)

		assert.NoError(t, svc.Unsave(context.Background(), userID, address))
	})

	t.Run("house was never saved", func(t *testing.T) {
		mockWriter.EXPECT().
			Delete(gomock.Any(), userID, address).
			Return(false, nil)

		err := svc.Unsave(context.Background(), userID, address)

		assert.ErrorIs(t, err, services.ErrHouseNotSaved)
	})

	t.Run("missing address", func(t *testing.T) {
		err := svc.Unsave(context.Background(), userID, "")

		assert.ErrorIs(t, err, services.ErrHouseAddressRequired)
	})
}
