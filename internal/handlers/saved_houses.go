package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/wesshacks/wesshacks/internal/logger"
	"github.com/wesshacks/wesshacks/internal/middlewares"
	"github.com/wesshacks/wesshacks/internal/models"
	"github.com/wesshacks/wesshacks/internal/services"
)

// SavedHouseLister defines the interface for reading a user's saved houses.
type SavedHouseLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.SavedHouse, error)
}

// SavedHouseSaver defines the interface for bookmarking a house.
type SavedHouseSaver interface {
	Save(ctx context.Context, userID uuid.UUID, houseAddress string) (bool, error)
}

// SavedHouseRemover defines the interface for removing a bookmark.
type SavedHouseRemover interface {
	Unsave(ctx context.Context, userID uuid.UUID, houseAddress string) error
}

// ListSavedHousesResponse represents the saved houses envelope
// swagger:model ListSavedHousesResponse
type ListSavedHousesResponse struct {
	// Response status
	// default: success
	Status string `json:"status"`

	// Number of saved houses
	Count int `json:"count"`

	// Saved houses, most recently saved first
	Data []models.SavedHouse `json:"data"`
}

// SaveHouseRequest represents the JSON body for saving a house
// swagger:model SaveHouseRequest
type SaveHouseRequest struct {
	// Street address of the house to save
	// required: true
	// default: 12 Fountain Ave
	HouseAddress string `json:"house_address" validate:"required"`
}

// SavedHousesMessageResponse represents a message-only success response
// swagger:model SavedHousesMessageResponse
type SavedHousesMessageResponse struct {
	// Response status
	// default: success
	Status string `json:"status"`

	// Message
	Message string `json:"message"`
}

// SavedHousesErrorResponse represents an error response for the saved houses endpoints
// swagger:model SavedHousesErrorResponse
type SavedHousesErrorResponse struct {
	// Response status
	// default: error
	Status string `json:"status"`

	// Error message
	Message string `json:"message"`
}

// NewListSavedHousesHandler returns an HTTP handler for the saved houses list.
// @Summary List saved houses
// @Description Returns the caller's saved houses with review aggregates
// @Tags saved_houses
// @Produce json
// @Success 200 {object} handlers.ListSavedHousesResponse "Saved houses"
// @Failure 401 {object} handlers.SavedHousesErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.SavedHousesErrorResponse "Internal server error"
// @Router /saved_houses [get]
// @Security BearerAuth
func NewListSavedHousesHandler(svc SavedHouseLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, ok := middlewares.GetIdentityFromContext(ctx)
		if !ok {
			writeSavedHousesError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		houses, err := svc.List(ctx, id.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list saved houses", "err", err)
			writeSavedHousesError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListSavedHousesResponse{
			Status: "success",
			Count:  len(houses),
			Data:   houses,
		})
	}
}

// NewSaveHouseHandler returns an HTTP handler for bookmarking a house.
// @Summary Save a house
// @Description Adds a house to the caller's saved list; saving twice is not an error
// @Tags saved_houses
// @Accept json
// @Produce json
// @Param saveHouseRequest body handlers.SaveHouseRequest true "Save House Request"
// @Success 200 {object} handlers.SavedHousesMessageResponse "House already in saved list"
// @Success 201 {object} handlers.SavedHousesMessageResponse "House saved"
// @Failure 400 {object} handlers.SavedHousesErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.SavedHousesErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.SavedHousesErrorResponse "House not found"
// @Router /saved_houses [post]
// @Security BearerAuth
func NewSaveHouseHandler(svc SavedHouseSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, ok := middlewares.GetIdentityFromContext(ctx)
		if !ok {
			writeSavedHousesError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req SaveHouseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeSavedHousesError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeSavedHousesError(w, http.StatusBadRequest, services.ErrHouseAddressRequired.Error())
			return
		}

		created, err := svc.Save(ctx, id.UserID, req.HouseAddress)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrHouseAddressRequired):
				writeSavedHousesError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrHouseNotFound):
				writeSavedHousesError(w, http.StatusNotFound, err.Error())
			default:
				logger.Log.Errorw("failed to save house", "err", err)
				writeSavedHousesError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if created {
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(SavedHousesMessageResponse{
				Status:  "success",
				Message: "House saved",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SavedHousesMessageResponse{
			Status:  "success",
			Message: "House already in saved list",
		})
	}
}

// NewUnsaveHouseHandler returns an HTTP handler for removing a bookmark.
// @Summary Unsave a house
// @Description Removes a house from the caller's saved list
// @Tags saved_houses
// @Produce json
// @Param house query string true "Street address"
// @Success 200 {object} handlers.SavedHousesMessageResponse "House removed from saved list"
// @Failure 400 {object} handlers.SavedHousesErrorResponse "Missing house address"
// @Failure 401 {object} handlers.SavedHousesErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.SavedHousesErrorResponse "House was not in saved list"
// @Router /saved_houses [delete]
// @Security BearerAuth
func NewUnsaveHouseHandler(svc SavedHouseRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, ok := middlewares.GetIdentityFromContext(ctx)
		if !ok {
			writeSavedHousesError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		houseAddress := r.URL.Query().Get("house")

		if err := svc.Unsave(ctx, id.UserID, houseAddress); err != nil {
			switch {
			case errors.Is(err, services.ErrHouseAddressRequired):
				writeSavedHousesError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrHouseNotSaved):
				writeSavedHousesError(w, http.StatusNotFound, "House was not in saved list")
			default:
				logger.Log.Errorw("failed to unsave house", "err", err)
				writeSavedHousesError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SavedHousesMessageResponse{
			Status:  "success",
			Message: "House removed from saved list",
		})
	}
}

func writeSavedHousesError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(SavedHousesErrorResponse{
		Status:  "error",
		Message: message,
	})
}
