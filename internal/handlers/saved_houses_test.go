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

func TestListSavedHousesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockSavedHouseLister(ctrl)

	userID := uuid.New()
	identity := middlewares.Identity{UserID: userID, Username: "alice"}

	t.Run("returns the saved list", func(t *testing.T) {
		mockSvc.EXPECT().
			List(gomock.Any(), userID).
			Return([]models.SavedHouse{
				{HouseDB: models.HouseDB{StreetAddress: "12 Fairview Ave"}, AvgRating: 4.5, ReviewsCount: 2},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/saved_houses", nil)
		req = req.WithContext(middlewares.SetIdentityToContext(req.Context(), identity))
		w := httptest.NewRecorder()

		NewListSavedHousesHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp ListSavedHousesResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Count)
		assert.Equal(t, "12 Fairview Ave", resp.Data[0].StreetAddress)
	})

	t.Run("no identity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/saved_houses", nil)
		w := httptest.NewRecorder()

		NewListSavedHousesHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.EXPECT().
			List(gomock.Any(), userID).
			Return(nil, errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/saved_houses", nil)
		req = req.WithContext(middlewares.SetIdentityToContext(req.Context(), identity))
		w := httptest.NewRecorder()

		NewListSavedHousesHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestSaveHouseHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockSavedHouseSaver(ctrl)

	userID := uuid.New()
	identity := middlewares.Identity{UserID: userID, Username: "alice"}

	tests := []struct {
		name            string
		inputBody       interface{}
		mockSetup       func()
		expectedCode    int
		expectedMessage string
	}{
		{
			name:      "first save",
			inputBody: SaveHouseRequest{HouseAddress: "12 Fairview Ave"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Save(gomock.Any(), userID, "12 Fairview Ave").
					Return(true, nil)
			},
			expectedCode:    http.StatusCreated,
			expectedMessage: "House saved",
		},
		{
			name:      "already saved",
			inputBody: SaveHouseRequest{HouseAddress: "12 Fairview Ave"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Save(gomock.Any(), userID, "12 Fairview Ave").
					Return(false, nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "House already in saved list",
		},
		{
			name:         "missing address",
			inputBody:    SaveHouseRequest{},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "unknown house",
			inputBody: SaveHouseRequest{HouseAddress: "404 Nowhere St"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Save(gomock.Any(), userID, "404 Nowhere St").
					Return(false, services.ErrHouseNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			bodyBytes, _ := json.Marshal(tt.inputBody)

			req := httptest.NewRequest(http.MethodPost, "/saved_houses", bytes.NewReader(bodyBytes))
			req = req.WithContext(middlewares.SetIdentityToContext(req.Context(), identity))
			w := httptest.NewRecorder()

			NewSaveHouseHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedMessage != "" {
				var resp SavedHousesMessageResponse
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedMessage, resp.Message)
			}
		})
	}
}

func TestUnsaveHouseHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockSavedHouseRemover(ctrl)

	userID := uuid.New()
	identity := middlewares.Identity{UserID: userID, Username: "alice"}

	tests := []struct {
		name         string
		target       string
		mockSetup    func()
		expectedCode int
	}{
		{
			name:   "removes the bookmark",
			target: "/saved_houses?house=12+Fairview+Ave",
			mockSetup: func() {
				mockSvc.EXPECT().
					Unsave(gomock.Any(), userID, "12 Fairview Ave").
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "house was never saved",
			target: "/saved_houses?house=12+Fairview+Ave",
			mockSetup: func() {
				mockSvc.EXPECT().
					Unsave(gomock.Any(), userID, "12 Fairview Ave").
					Return(services.ErrHouseNotSaved)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:   "missing house param",
			target: "/saved_houses",
			mockSetup: func() {
				mockSvc.EXPECT().
					Unsave(gomock.Any(), userID, "").
					Return(services.ErrHouseAddressRequired)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodDelete, tt.target, nil)
			req = req.WithContext(middlewares.SetIdentityToContext(req.Context(), identity))
			w := httptest.NewRecorder()

			NewUnsaveHouseHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
