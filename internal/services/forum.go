package services

import (
	"context"
	"errors"

	"github.com/wesshacks/wesshacks/internal/logger"
	"github.com/wesshacks/wesshacks/internal/models"
)

// ErrForumPostIncomplete is returned when a post is missing its title or body.
var ErrForumPostIncomplete = errors.New("title and content are required")

// ForumPostReader defines read operations for forum posts.
type ForumPostReader interface {
	List(ctx context.Context) ([]models.ForumPost, error)
}

// ForumPostWriter defines write operations for forum posts.
type ForumPostWriter interface {
	Save(ctx context.Context, post models.ForumPost) (int64, error)
}

// ForumService handles the append-only classifieds board.
type ForumService struct {
	reader ForumPostReader
	writer ForumPostWriter
}

// NewForumService creates a new ForumService instance.
func NewForumService(reader ForumPostReader, writer ForumPostWriter) *ForumService {
	return &ForumService{
		reader: reader,
		writer: writer,
	}
}

// List returns all posts, newest first.
func (svc *ForumService) List(ctx context.Context) ([]models.ForumPost, error) {
	posts, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list forum posts", "err", err)
		return nil, err
	}
	return posts, nil
}

// Create appends a new post and returns its generated id.
func (svc *ForumService) Create(ctx context.Context, post models.ForumPost) (int64, error) {
	if post.Title == "" || post.Content == "" {
		return 0, ErrForumPostIncomplete
	}

	postID, err := svc.writer.Save(ctx, post)
	if err != nil {
		logger.Log.Errorw("failed to save forum post", "err", err)
		return 0, err
	}

	return postID, nil
}
