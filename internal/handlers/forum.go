package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wesshacks/wesshacks/internal/logger"
	"github.com/wesshacks/wesshacks/internal/middlewares"
	"github.com/wesshacks/wesshacks/internal/models"
	"github.com/wesshacks/wesshacks/internal/services"
)

// ForumLister defines the interface for reading forum posts.
type ForumLister interface {
	List(ctx context.Context) ([]models.ForumPost, error)
}

// ForumPoster defines the interface for creating a forum post.
type ForumPoster interface {
	Create(ctx context.Context, post models.ForumPost) (int64, error)
}

// ListForumPostsResponse represents the forum listing envelope
// swagger:model ListForumPostsResponse
type ListForumPostsResponse struct {
	// Response status
	// default: success
	Status string `json:"status"`

	// Number of posts
	Count int `json:"count"`

	// Posts, newest first
	Data []models.ForumPost `json:"data"`
}

// CreateForumPostRequest represents the JSON body for creating a post
// swagger:model CreateForumPostRequest
type CreateForumPostRequest struct {
	// Post title
	// required: true
	// default: Couch for sale
	Title string `json:"title" validate:"required"`

	// How to reach the poster
	ContactInfo string `json:"contact_info"`

	// Post body
	// required: true
	Content string `json:"content" validate:"required"`

	// Poster name; ignored when the request is authenticated
	Username string `json:"username"`
}

// CreateForumPostResponse represents a successful post creation
// swagger:model CreateForumPostResponse
type CreateForumPostResponse struct {
	// Response status
	// default: success
	Status string `json:"status"`

	// Generated post id
	PostID int64 `json:"post_id"`
}

// ForumErrorResponse represents an error response for the forum endpoints
// swagger:model ForumErrorResponse
type ForumErrorResponse struct {
	// Response status
	// default: error
	Status string `json:"status"`

	// Error message
	Message string `json:"message"`
}

// NewListForumPostsHandler returns an HTTP handler for the classifieds board.
// @Summary List forum posts
// @Description Returns all posts, newest first
// @Tags forum
// @Produce json
// @Success 200 {object} handlers.ListForumPostsResponse "Posts"
// @Failure 500 {object} handlers.ForumErrorResponse "Internal server error"
// @Router /forum [get]
func NewListForumPostsHandler(svc ForumLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list forum posts", "err", err)
			writeForumError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListForumPostsResponse{
			Status: "success",
			Count:  len(posts),
			Data:   posts,
		})
	}
}

// NewCreateForumPostHandler returns an HTTP handler for posting to the board.
// The author is the authenticated identity when one is present; otherwise the
// body's username is kept, which only happens on deployments that allow
// anonymous posting.
// @Summary Create a forum post
// @Description Appends a post to the classifieds board
// @Tags forum
// @Accept json
// @Produce json
// @Param createForumPostRequest body handlers.CreateForumPostRequest true "Create Forum Post Request"
// @Success 201 {object} handlers.CreateForumPostResponse "Post created"
// @Failure 400 {object} handlers.ForumErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ForumErrorResponse "Unauthorized"
// @Router /forum [post]
// @Security BearerAuth
func NewCreateForumPostHandler(svc ForumPoster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req CreateForumPostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeForumError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeForumError(w, http.StatusBadRequest, services.ErrForumPostIncomplete.Error())
			return
		}

		username := req.Username
		if id, ok := middlewares.GetIdentityFromContext(ctx); ok {
			username = id.Username
		}

		post := models.ForumPost{
			Title:       req.Title,
			ContactInfo: req.ContactInfo,
			Content:     req.Content,
			Username:    username,
		}

		postID, err := svc.Create(ctx, post)
		if err != nil {
			if errors.Is(err, services.ErrForumPostIncomplete) {
				writeForumError(w, http.StatusBadRequest, err.Error())
				return
			}
			logger.Log.Errorw("failed to create forum post", "err", err)
			writeForumError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateForumPostResponse{
			Status: "success",
			PostID: postID,
		})
	}
}

func writeForumError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(ForumErrorResponse{
		Status:  "error",
		Message: message,
	})
}
