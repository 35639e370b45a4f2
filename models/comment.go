package models

import (
	"time"
)

type Comment struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	PostID       int64     `json:"post_id" gorm:"not null;index"`
	AuthorUserID int64     `json:"author_user_id" gorm:"not null;index"`
	Text         string    `json:"text" gorm:"type:text;not null"`
	CreatedAt    time.Time `json:"created_at"`
}

// CommentView is a comment with its author's username resolved. Content
// mirrors Text; older clients read "content" instead of "text".
type CommentView struct {
	ID             int64     `json:"id"`
	PostID         int64     `json:"post_id"`
	AuthorUserID   int64     `json:"author_user_id"`
	Text           string    `json:"text"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
	AuthorUsername string    `json:"author_username"`
}
