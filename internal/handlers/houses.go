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

// HouseLister defines the interface that the listings service must implement.
type HouseLister interface {
	ListHouses(ctx context.Context, filter services.ListingFilter, callerID *uuid.UUID) ([]models.House, error)
}

// HouseRegistrar defines the interface that the house registration service must implement.
type HouseRegistrar interface {
	Register(ctx context.Context, userID uuid.UUID, username string, house models.HouseDB) error
}

// ListHousesResponse represents the house listing envelope
// swagger:model ListHousesResponse
type ListHousesResponse struct {
	// Response status
	// default: success
	Status string `json:"status"`

	// Number of houses returned
	Count int `json:"count"`

	// Houses with derived listing fields
	Data []models.House `json:"data"`
}

// RegisterHouseRequest represents the JSON body for house registration
// swagger:model RegisterHouseRequest
type RegisterHouseRequest struct {
	// Street address, unique catalog key
	// required: true
	// default: 12 Fountain Ave
	StreetAddress string `json:"street_address" validate:"required"`

	// Optional external listing URL
	URL *string `json:"url"`

	// Number of residents the house fits (2-6)
	// required: true
	// default: 4
	Capacity int `json:"capacity" validate:"required"`

	// Bathroom count (1, 1.5, 2, 2.5 or 3)
	// required: true
	// default: 1.5
	Bathrooms float64 `json:"bathrooms" validate:"required"`
}

// HousesErrorResponse represents an error response for the houses endpoints
// swagger:model HousesErrorResponse
type HousesErrorResponse struct {
	// Response status
	// default: error
	Status string `json:"status"`

	// Error message
	Message string `json:"message"`
}

// HousesMessageResponse represents a message-only success response
// swagger:model HousesMessageResponse
type HousesMessageResponse struct {
	// Response status
	// default: success
	Status string `json:"status"`

	// Message
	Message string `json:"message"`
}

// NewListHousesHandler returns an HTTP handler for the house listing.
// @Summary List houses
// @Description Returns houses matching the supplied filters, annotated with noise classification and review aggregates
// @Tags houses
// @Produce json
// @Param capacity query string false "Exact capacity"
// @Param bathroom query string false "Exact bathroom count"
// @Param search query string false "Substring of the street address"
// @Param id query string false "Exact street address"
// @Param noise query string false "quiet or loud"
// @Param sort query string false "address (default) or reviewed_first"
// @Success 200 {object} handlers.ListHousesResponse "Annotated houses"
// @Failure 500 {object} handlers.HousesErrorResponse "Internal server error"
// @Router /houses [get]
func NewListHousesHandler(svc HouseLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		q := r.URL.Query()

		filter := services.ListingFilter{
			Capacity:  q.Get("capacity"),
			Bathrooms: q.Get("bathroom"),
			Search:    q.Get("search"),
			Address:   q.Get("id"),
			Noise:     q.Get("noise"),
			Sort:      services.SortPolicy(q.Get("sort")),
		}

		var callerID *uuid.UUID
		if id, ok := middlewares.GetIdentityFromContext(ctx); ok {
			callerID = &id.UserID
		}

		houses, err := svc.ListHouses(ctx, filter, callerID)
		if err != nil {
			logger.Log.Errorw("failed to list houses", "err", err)
			writeHousesError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListHousesResponse{
			Status: "success",
			Count:  len(houses),
			Data:   houses,
		})
	}
}

// NewRegisterHouseHandler returns an HTTP handler for registering a house.
// @Summary Register a house
// @Description Adds a new house to the catalog
// @Tags houses
// @Accept json
// @Produce json
// @Param registerHouseRequest body handlers.RegisterHouseRequest true "Register House Request"
// @Success 201 {object} handlers.HousesMessageResponse "House registered"
// @Failure 400 {object} handlers.HousesErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.HousesErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.HousesErrorResponse "Address already registered"
// @Router /houses [post]
// @Security BearerAuth
func NewRegisterHouseHandler(svc HouseRegistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, ok := middlewares.GetIdentityFromContext(ctx)
		if !ok {
			writeHousesError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req RegisterHouseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeHousesError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeHousesError(w, http.StatusBadRequest, "street_address, capacity and bathrooms are required")
			return
		}

		house := models.HouseDB{
			StreetAddress: req.StreetAddress,
			URL:           req.URL,
			Capacity:      req.Capacity,
			Bathrooms:     req.Bathrooms,
		}

		if err := svc.Register(ctx, id.UserID, id.Username, house); err != nil {
			switch {
			case errors.Is(err, services.ErrHouseExists):
				writeHousesError(w, http.StatusConflict, err.Error())
			case errors.Is(err, services.ErrHouseAddressRequired),
				errors.Is(err, services.ErrInvalidCapacity),
				errors.Is(err, services.ErrInvalidBathrooms):
				writeHousesError(w, http.StatusBadRequest, err.Error())
			default:
				logger.Log.Errorw("failed to register house", "err", err)
				writeHousesError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(HousesMessageResponse{
			Status:  "success",
			Message: "House registered",
		})
	}
}

func writeHousesError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(HousesErrorResponse{
		Status:  "error",
		Message: message,
	})
}
