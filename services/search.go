// File: /services/search.go
package services

import (
	"context"
	"strings"

	"pulsenet-api/models"
	"pulsenet-api/repositories"
)

// SearchService selects and orders a relevance-ranked result page for a
// text query. Posts by authors the viewer follows rank ahead of
// everything else, then relevance, then recency.
type SearchService interface {
	SearchPosts(ctx context.Context, query string, offset, limit int, viewerID *int64) (*models.SearchResponse, error)
}

type searchService struct {
	posts repositories.PostRepository
	views PostViewService
}

func NewSearchService(posts repositories.PostRepository, views PostViewService) SearchService {
	return &searchService{posts: posts, views: views}
}

func (s *searchService) SearchPosts(ctx context.Context, query string, offset, limit int, viewerID *int64) (*models.SearchResponse, error) {
	if strings.TrimSpace(query) == "" {
		return nil, &ValidationError{Reason: "Missing query parameter q"}
	}

	offset, limit = ClampPage(offset, limit)

	hits, err := s.posts.SearchPublicPosts(ctx, query, viewerID, offset, limit+1)
	if err != nil {
		return nil, &StoreError{Err: err}
	}

	hasMore := len(hits) > limit
	if hasMore {
		hits = hits[:limit]
	}

	rows := make([]models.Post, len(hits))
	for i, hit := range hits {
		rows[i] = hit.Post
	}

	views, err := s.views.Assemble(ctx, rows, viewerID)
	if err != nil {
		return nil, err
	}

	return &models.SearchResponse{
		FeedResponse: models.FeedResponse{
			Posts:   views,
			Offset:  offset,
			Limit:   limit,
			HasMore: hasMore,
		},
		Query: query,
	}, nil
}
