// File: /services/feed.go
package services

import (
	"context"

	"pulsenet-api/models"
	"pulsenet-api/repositories"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// ClampPage normalizes offset and limit to the ranges the read surfaces
// accept: offset >= 0, limit in [1, MaxPageLimit].
func ClampPage(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit < 1 {
		limit = 1
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return offset, limit
}

// FeedService selects and orders the public chronological feed page.
type FeedService interface {
	GetFeed(ctx context.Context, offset, limit int, viewerID *int64) (*models.FeedResponse, error)
}

type feedService struct {
	posts repositories.PostRepository
	views PostViewService
}

func NewFeedService(posts repositories.PostRepository, views PostViewService) FeedService {
	return &feedService{posts: posts, views: views}
}

func (s *feedService) GetFeed(ctx context.Context, offset, limit int, viewerID *int64) (*models.FeedResponse, error) {
	offset, limit = ClampPage(offset, limit)

	// Fetch one row beyond the page: has_more reflects what actually
	// exists instead of guessing from a full page.
	rows, err := s.posts.PublicFeedPage(ctx, offset, limit+1)
	if err != nil {
		return nil, &StoreError{Err: err}
	}

	hasMore := len(rows) > limit
	if hasMore {
		rows = rows[:limit]
	}

	views, err := s.views.Assemble(ctx, rows, viewerID)
	if err != nil {
		return nil, err
	}

	return &models.FeedResponse{
		Posts:   views,
		Offset:  offset,
		Limit:   limit,
		HasMore: hasMore,
	}, nil
}
