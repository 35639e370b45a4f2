package models

import (
	"time"
)

// Post ids are auto-incremented and therefore monotonic; feed ordering
// relies on that for its created_at tie-break.
type Post struct {
	ID           int64      `json:"id" gorm:"primaryKey"`
	AuthorUserID int64      `json:"author_user_id" gorm:"not null;index:idx_posts_author"`
	Text         string     `json:"text" gorm:"type:text;not null"`
	Visibility   Visibility `json:"visibility" gorm:"not null;default:'public';size:16;index:idx_posts_visibility_created"`
	CreatedAt    time.Time  `json:"created_at" gorm:"index:idx_posts_visibility_created"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type Attachment struct {
	ID        int64          `json:"id" gorm:"primaryKey"`
	PostID    int64          `json:"post_id" gorm:"not null;index"`
	Type      AttachmentType `json:"type" gorm:"not null;size:16"`
	FilePath  string         `json:"file_path" gorm:"not null;size:500"`
	CreatedAt time.Time      `json:"created_at"`
}

// Like is unique per (post_id, user_id); inserts use ON CONFLICT DO
// NOTHING so repeated likes are no-ops.
type Like struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	PostID    int64     `json:"post_id" gorm:"not null;uniqueIndex:ux_likes_post_user;index"`
	UserID    int64     `json:"user_id" gorm:"not null;uniqueIndex:ux_likes_post_user"`
	CreatedAt time.Time `json:"created_at"`
}
