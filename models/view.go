package models

import (
	"time"
)

type AttachmentView struct {
	ID       int64          `json:"id"`
	Type     AttachmentType `json:"type"`
	FilePath string         `json:"file_path"`
}

// PostView is the client-facing representation of a post, enriched with
// attachments, engagement counts and viewer-relative fields. Author
// fields are empty strings when the author has no profile row.
type PostView struct {
	ID               int64            `json:"id"`
	AuthorUserID     int64            `json:"author_user_id"`
	Text             string           `json:"text"`
	Visibility       Visibility       `json:"visibility"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
	AuthorUsername   string           `json:"author_username"`
	AuthorAvatarPath string           `json:"author_avatar_path"`
	Attachments      []AttachmentView `json:"attachments"`
	LikesCount       int64            `json:"likes_count"`
	CommentsCount    int64            `json:"comments_count"`
	IsLiked          bool             `json:"is_liked"`
}

// FeedResponse is one offset-based page of an ordered result set.
type FeedResponse struct {
	Posts   []PostView `json:"posts"`
	Offset  int        `json:"offset"`
	Limit   int        `json:"limit"`
	HasMore bool       `json:"has_more"`
}

type SearchResponse struct {
	FeedResponse
	Query string `json:"query"`
}
