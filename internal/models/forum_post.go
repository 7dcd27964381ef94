package models

import "time"

// ForumPost represents a classifieds post. Posts are append-only.
type ForumPost struct {
	PostID      int64     `json:"post_id" db:"post_id"`
	Title       string    `json:"title" db:"title"`
	ContactInfo string    `json:"contact_info" db:"contact_info"`
	Content     string    `json:"content" db:"content"`
	Username    string    `json:"username" db:"username"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
