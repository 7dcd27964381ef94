package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/wesshacks/wesshacks/internal/logger"
	"github.com/wesshacks/wesshacks/internal/models"
)

type ForumPostReadRepository struct {
	db *sqlx.DB
}

func NewForumPostReadRepository(db *sqlx.DB) *ForumPostReadRepository {
	return &ForumPostReadRepository{db: db}
}

// List returns all forum posts, newest first.
func (r *ForumPostReadRepository) List(ctx context.Context) ([]models.ForumPost, error) {
	const query = `
		SELECT post_id, title, contact_info, content, username, created_at
		FROM forum_posts
		ORDER BY created_at DESC
	`

	var posts []models.ForumPost
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &posts, query)

	logger.Log.Infow("query executed",
		"query", oneline(query),
		"rows", len(posts),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return posts, nil
}

type ForumPostWriteRepository struct {
	db *sqlx.DB
}

func NewForumPostWriteRepository(db *sqlx.DB) *ForumPostWriteRepository {
	return &ForumPostWriteRepository{db: db}
}

// Save inserts a new post and returns its generated id.
func (r *ForumPostWriteRepository) Save(ctx context.Context, post models.ForumPost) (int64, error) {
	const query = `
		INSERT INTO forum_posts (title, contact_info, content, username, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING post_id
	`
	args := []any{post.Title, post.ContactInfo, post.Content, post.Username}

	var postID int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &postID, query, args...)

	logger.Log.Infow("query executed",
		"query", oneline(query),
		"args", args,
		"result", postID,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return postID, nil
}
