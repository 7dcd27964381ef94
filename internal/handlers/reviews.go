package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/wesshacks/wesshacks/internal/logger"
	"github.com/wesshacks/wesshacks/internal/middlewares"
	"github.com/wesshacks/wesshacks/internal/models"
	"github.com/wesshacks/wesshacks/internal/services"
)

// ReviewLister defines the read interface that the reviews service must implement.
type ReviewLister interface {
	GetByID(ctx context.Context, reviewID int64) (*models.Review, error)
	ListByHouse(ctx context.Context, houseAddress string) ([]models.Review, error)
	ListRecent(ctx context.Context, limit int) ([]models.Review, error)
}

// ReviewCreator defines the interface for creating a review.
type ReviewCreator interface {
	Create(ctx context.Context, userID uuid.UUID, username string, review models.Review) (int64, error)
}

// ReviewUpdater defines the interface for updating a review.
type ReviewUpdater interface {
	Update(ctx context.Context, userID uuid.UUID, reviewID int64, rating float64, reviewText string) error
}

// ReviewDeleter defines the interface for deleting a review.
type ReviewDeleter interface {
	Delete(ctx context.Context, userID uuid.UUID, reviewID int64) error
}

// ListReviewsResponse represents the review listing envelope
// swagger:model ListReviewsResponse
type ListReviewsResponse struct {
	// Response status
	// default: success
	Status string `json:"status"`

	// Number of reviews returned
	Count int `json:"count"`

	// Reviews, newest first
	Data []models.Review `json:"data"`
}

// ReviewResponse represents a single review response
// swagger:model ReviewResponse
type ReviewResponse struct {
	// Response status
	// default: success
	Status string `json:"status"`

	// The review
	Data *models.Review `json:"data"`
}

// CreateReviewRequest represents the JSON body for creating a review
// swagger:model CreateReviewRequest
type CreateReviewRequest struct {
	// Street address of the reviewed house
	// required: true
	// default: 12 Fountain Ave
	HouseAddress string `json:"house_address" validate:"required"`

	// Rating, 0 to 5 in half-point steps. A pointer so an explicit 0 is
	// distinguishable from an omitted rating.
	// required: true
	// default: 4.5
	Rating *float64 `json:"rating"`

	// Optional review body, up to 1000 characters
	ReviewText string `json:"review_text"`

	// Whether the reviewer lived in the house
	IsResident bool `json:"is_resident"`
}

// CreateReviewResponse represents a successful review creation
// swagger:model CreateReviewResponse
type CreateReviewResponse struct {
	// Response status
	// default: success
	Status string `json:"status"`

	// Generated review id
	ReviewID int64 `json:"review_id"`
}

// UpdateReviewRequest represents the JSON body for editing a review
// swagger:model UpdateReviewRequest
type UpdateReviewRequest struct {
	// Review id
	// required: true
	ReviewID int64 `json:"review_id" validate:"required"`

	// New rating, 0 to 5 in half-point steps
	// required: true
	Rating *float64 `json:"rating"`

	// New review body
	ReviewText string `json:"review_text"`
}

// ReviewsMessageResponse represents a message-only success response
// swagger:model ReviewsMessageResponse
type ReviewsMessageResponse struct {
	// Response status
	// default: success
	Status string `json:"status"`

	// Message
	Message string `json:"message"`
}

// ReviewsErrorResponse represents an error response for the reviews endpoints
// swagger:model ReviewsErrorResponse
type ReviewsErrorResponse struct {
	// Response status
	// default: error
	Status string `json:"status"`

	// Error message
	Message string `json:"message"`
}

// NewListReviewsHandler returns an HTTP handler for reading reviews.
// @Summary List reviews
// @Description Returns a single review by id, all reviews for a house, or the most recent reviews overall
// @Tags reviews
// @Produce json
// @Param id query string false "Review id"
// @Param house query string false "Street address"
// @Param limit query string false "Max reviews for the overall listing (default 20)"
// @Success 200 {object} handlers.ListReviewsResponse "Reviews"
// @Failure 400 {object} handlers.ReviewsErrorResponse "Invalid review id"
// @Failure 404 {object} handlers.ReviewsErrorResponse "Review not found"
// @Failure 500 {object} handlers.ReviewsErrorResponse "Internal server error"
// @Router /reviews [get]
func NewListReviewsHandler(svc ReviewLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		q := r.URL.Query()

		if idParam := q.Get("id"); idParam != "" {
			reviewID, err := strconv.ParseInt(idParam, 10, 64)
			if err != nil {
				writeReviewsError(w, http.StatusBadRequest, "invalid review id")
				return
			}

			review, err := svc.GetByID(ctx, reviewID)
			if err != nil {
				if errors.Is(err, services.ErrReviewNotFound) {
					writeReviewsError(w, http.StatusNotFound, err.Error())
					return
				}
				logger.Log.Errorw("failed to get review", "err", err)
				writeReviewsError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(ReviewResponse{Status: "success", Data: review})
			return
		}

		var (
			reviews []models.Review
			err     error
		)

		if house := q.Get("house"); house != "" {
			reviews, err = svc.ListByHouse(ctx, house)
		} else {
			// A malformed limit falls back to the default rather than failing.
			limit, _ := strconv.Atoi(q.Get("limit"))
			reviews, err = svc.ListRecent(ctx, limit)
		}
		if err != nil {
			logger.Log.Errorw("failed to list reviews", "err", err)
			writeReviewsError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListReviewsResponse{
			Status: "success",
			Count:  len(reviews),
			Data:   reviews,
		})
	}
}

// NewCreateReviewHandler returns an HTTP handler for posting a review.
// @Summary Create a review
// @Description Stores a new review for a house
// @Tags reviews
// @Accept json
// @Produce json
// @Param createReviewRequest body handlers.CreateReviewRequest true "Create Review Request"
// @Success 201 {object} handlers.CreateReviewResponse "Review created"
// @Failure 400 {object} handlers.ReviewsErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ReviewsErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ReviewsErrorResponse "House not found"
// @Router /reviews [post]
// @Security BearerAuth
func NewCreateReviewHandler(svc ReviewCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, ok := middlewares.GetIdentityFromContext(ctx)
		if !ok {
			writeReviewsError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req CreateReviewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeReviewsError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeReviewsError(w, http.StatusBadRequest, services.ErrHouseAddressRequired.Error())
			return
		}
		if req.Rating == nil {
			writeReviewsError(w, http.StatusBadRequest, services.ErrInvalidRating.Error())
			return
		}

		review := models.Review{
			HouseAddress: req.HouseAddress,
			Rating:       *req.Rating,
			ReviewText:   req.ReviewText,
			IsResident:   req.IsResident,
		}

		reviewID, err := svc.Create(ctx, id.UserID, id.Username, review)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrHouseAddressRequired),
				errors.Is(err, services.ErrInvalidRating),
				errors.Is(err, services.ErrReviewTextTooLong):
				writeReviewsError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrHouseNotFound):
				writeReviewsError(w, http.StatusNotFound, err.Error())
			default:
				logger.Log.Errorw("failed to create review", "err", err)
				writeReviewsError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateReviewResponse{
			Status:   "success",
			ReviewID: reviewID,
		})
	}
}

// NewUpdateReviewHandler returns an HTTP handler for editing a review.
// @Summary Update a review
// @Description Changes the rating and body of the caller's own review
// @Tags reviews
// @Accept json
// @Produce json
// @Param updateReviewRequest body handlers.UpdateReviewRequest true "Update Review Request"
// @Success 200 {object} handlers.ReviewsMessageResponse "Review updated"
// @Failure 400 {object} handlers.ReviewsErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ReviewsErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ReviewsErrorResponse "Review belongs to another user"
// @Failure 404 {object} handlers.ReviewsErrorResponse "Review not found"
// @Router /reviews [put]
// @Security BearerAuth
func NewUpdateReviewHandler(svc ReviewUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, ok := middlewares.GetIdentityFromContext(ctx)
		if !ok {
			writeReviewsError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req UpdateReviewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeReviewsError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeReviewsError(w, http.StatusBadRequest, "review_id is required")
			return
		}
		if req.Rating == nil {
			writeReviewsError(w, http.StatusBadRequest, services.ErrInvalidRating.Error())
			return
		}

		if err := svc.Update(ctx, id.UserID, req.ReviewID, *req.Rating, req.ReviewText); err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidRating),
				errors.Is(err, services.ErrReviewTextTooLong):
				writeReviewsError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrReviewNotFound):
				writeReviewsError(w, http.StatusNotFound, err.Error())
			case errors.Is(err, services.ErrReviewForbidden):
				writeReviewsError(w, http.StatusForbidden, err.Error())
			default:
				logger.Log.Errorw("failed to update review", "err", err)
				writeReviewsError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ReviewsMessageResponse{
			Status:  "success",
			Message: "Review updated",
		})
	}
}

// NewDeleteReviewHandler returns an HTTP handler for deleting a review.
// @Summary Delete a review
// @Description Removes the caller's own review
// @Tags reviews
// @Produce json
// @Param id query string true "Review id"
// @Success 200 {object} handlers.ReviewsMessageResponse "Review deleted"
// @Failure 400 {object} handlers.ReviewsErrorResponse "Invalid review id"
// @Failure 401 {object} handlers.ReviewsErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ReviewsErrorResponse "Review belongs to another user"
// @Failure 404 {object} handlers.ReviewsErrorResponse "Review not found"
// @Router /reviews [delete]
// @Security BearerAuth
func NewDeleteReviewHandler(svc ReviewDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, ok := middlewares.GetIdentityFromContext(ctx)
		if !ok {
			writeReviewsError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		reviewID, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
		if err != nil {
			writeReviewsError(w, http.StatusBadRequest, "invalid review id")
			return
		}

		if err := svc.Delete(ctx, id.UserID, reviewID); err != nil {
			switch {
			case errors.Is(err, services.ErrReviewNotFound):
				writeReviewsError(w, http.StatusNotFound, err.Error())
			case errors.Is(err, services.ErrReviewForbidden):
				writeReviewsError(w, http.StatusForbidden, err.Error())
			default:
				logger.Log.Errorw("failed to delete review", "err", err)
				writeReviewsError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ReviewsMessageResponse{
			Status:  "success",
			Message: "Review deleted",
		})
	}
}

func writeReviewsError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(ReviewsErrorResponse{
		Status:  "error",
		Message: message,
	})
}
