package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/wesshacks/wesshacks/internal/middlewares"
	"github.com/wesshacks/wesshacks/internal/models"
	"github.com/wesshacks/wesshacks/internal/services"
)

func TestListHousesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockHouseLister(ctrl)

	userID := uuid.New()
	identity := middlewares.Identity{UserID: userID, Username: "alice"}

	houses := []models.House{
		{HouseDB: models.HouseDB{StreetAddress: "12 Fairview Ave"}, IsQuiet: true, AvgRating: 4.5, ReviewsCount: 2},
	}

	t.Run("anonymous listing", func(t *testing.T) {
		mockSvc.EXPECT().
			ListHouses(gomock.Any(), services.ListingFilter{
				Capacity: "4",
				Noise:    "quiet",
				Sort:     services.SortByAddress,
			}, nil).
			Return(houses, nil)

		req := httptest.NewRequest(http.MethodGet, "/houses?capacity=4&noise=quiet&sort=address", nil)
		w := httptest.NewRecorder()

		NewListHousesHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp ListHousesResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "success", resp.Status)
		assert.Equal(t, 1, resp.Count)
		assert.Equal(t, "12 Fairview Ave", resp.Data[0].StreetAddress)
	})

	t.Run("authenticated caller is passed through", func(t *testing.T) {
		mockSvc.EXPECT().
			ListHouses(gomock.Any(), services.ListingFilter{}, &userID).
			Return(houses, nil)

		req := httptest.NewRequest(http.MethodGet, "/houses", nil)
		req = req.WithContext(middlewares.SetIdentityToContext(req.Context(), identity))
		w := httptest.NewRecorder()

		NewListHousesHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.EXPECT().
			ListHouses(gomock.Any(), gomock.Any(), nil).
			Return(nil, errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/houses", nil)
		w := httptest.NewRecorder()

		NewListHousesHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestRegisterHouseHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockHouseRegistrar(ctrl)

	userID := uuid.New()
	identity := middlewares.Identity{UserID: userID, Username: "alice"}

	tests := []struct {
		name         string
		inputBody    interface{}
		authed       bool
		mockSetup    func()
		expectedCode int
	}{
		{
			name: "success",
			inputBody: RegisterHouseRequest{
				StreetAddress: "12 Fountain Ave",
				Capacity:      4,
				Bathrooms:     1.5,
			},
			authed: true,
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), userID, "alice", models.HouseDB{
						StreetAddress: "12 Fountain Ave",
						Capacity:      4,
						Bathrooms:     1.5,
					}).
					Return(nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "no identity",
			inputBody: RegisterHouseRequest{
				StreetAddress: "12 Fountain Ave",
				Capacity:      4,
				Bathrooms:     1.5,
			},
			authed:       false,
			mockSetup:    func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			authed:       true,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "missing address",
			inputBody: RegisterHouseRequest{
				Capacity:  4,
				Bathrooms: 1.5,
			},
			authed:       true,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "duplicate address",
			inputBody: RegisterHouseRequest{
				StreetAddress: "12 Fountain Ave",
				Capacity:      4,
				Bathrooms:     1.5,
			},
			authed: true,
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), userID, "alice", gomock.Any()).
					Return(services.ErrHouseExists)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "invalid capacity",
			inputBody: RegisterHouseRequest{
				StreetAddress: "12 Fountain Ave",
				Capacity:      9,
				Bathrooms:     1.5,
			},
			authed: true,
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), userID, "alice", gomock.Any()).
					Return(services.ErrInvalidCapacity)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var bodyBytes []byte
			switch v := tt.inputBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/houses", bytes.NewReader(bodyBytes))
			if tt.authed {
				req = req.WithContext(middlewares.SetIdentityToContext(req.Context(), identity))
			}
			w := httptest.NewRecorder()

			NewRegisterHouseHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
