package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulsenet-api/models"
	"pulsenet-api/repositories"
)

func TestSearchRejectsEmptyQuery(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewPostRepository(db, "english")
	svc := NewSearchService(repo, NewPostViewService(repo))

	for _, query := range []string{"", "   ", "\t\n"} {
		_, err := svc.SearchPosts(context.Background(), query, 0, 20, nil)
		require.Error(t, err)

		var validation *ValidationError
		assert.True(t, errors.As(err, &validation), "query %q should be a validation error", query)
	}
}

func TestSearchFollowedAuthorsRankFirst(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewPostRepository(db, "english")
	svc := NewSearchService(repo, NewPostViewService(repo))

	now := time.Now()
	// The stranger's post matches far more strongly, but the viewer
	// follows the friend, and the follow band outranks relevance.
	friendPost := seedPost(t, db, 2, "coffee once", models.VisibilityPublic, now)
	strangerPost := seedPost(t, db, 3, "coffee coffee coffee coffee", models.VisibilityPublic, now)

	viewer := int64(1)
	seedFollow(t, db, viewer, 2)

	result, err := svc.SearchPosts(context.Background(), "coffee", 0, 20, &viewer)
	require.NoError(t, err)
	require.Len(t, result.Posts, 2)
	assert.Equal(t, friendPost.ID, result.Posts[0].ID)
	assert.Equal(t, strangerPost.ID, result.Posts[1].ID)
}

func TestSearchOrdersByRelevanceForAnonymous(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewPostRepository(db, "english")
	svc := NewSearchService(repo, NewPostViewService(repo))

	now := time.Now()
	weak := seedPost(t, db, 1, "one coffee here", models.VisibilityPublic, now.Add(time.Minute))
	strong := seedPost(t, db, 2, "coffee coffee coffee", models.VisibilityPublic, now)

	result, err := svc.SearchPosts(context.Background(), "coffee", 0, 20, nil)
	require.NoError(t, err)
	require.Len(t, result.Posts, 2)
	assert.Equal(t, strong.ID, result.Posts[0].ID)
	assert.Equal(t, weak.ID, result.Posts[1].ID)
}

func TestSearchTiesBreakByRecency(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewPostRepository(db, "english")
	svc := NewSearchService(repo, NewPostViewService(repo))

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	older := seedPost(t, db, 1, "morning coffee", models.VisibilityPublic, base)
	newer := seedPost(t, db, 2, "evening coffee", models.VisibilityPublic, base.Add(time.Hour))

	result, err := svc.SearchPosts(context.Background(), "coffee", 0, 20, nil)
	require.NoError(t, err)
	require.Len(t, result.Posts, 2)
	assert.Equal(t, newer.ID, result.Posts[0].ID)
	assert.Equal(t, older.ID, result.Posts[1].ID)
}

func TestSearchExcludesPrivateAndNonMatching(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewPostRepository(db, "english")
	svc := NewSearchService(repo, NewPostViewService(repo))

	now := time.Now()
	match := seedPost(t, db, 1, "public coffee post", models.VisibilityPublic, now)
	seedPost(t, db, 1, "private coffee post", models.VisibilityPrivate, now)
	seedPost(t, db, 1, "nothing relevant", models.VisibilityPublic, now)

	author := int64(1)
	result, err := svc.SearchPosts(context.Background(), "coffee", 0, 20, &author)
	require.NoError(t, err)
	require.Len(t, result.Posts, 1)
	assert.Equal(t, match.ID, result.Posts[0].ID)
}

func TestSearchPagination(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewPostRepository(db, "english")
	svc := NewSearchService(repo, NewPostViewService(repo))

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seedPost(t, db, 1, "coffee", models.VisibilityPublic, base.Add(time.Duration(i)*time.Minute))
	}

	first, err := svc.SearchPosts(context.Background(), "coffee", 0, 3, nil)
	require.NoError(t, err)
	assert.Len(t, first.Posts, 3)
	assert.True(t, first.HasMore)
	assert.Equal(t, "coffee", first.Query)

	second, err := svc.SearchPosts(context.Background(), "coffee", 3, 3, nil)
	require.NoError(t, err)
	assert.Len(t, second.Posts, 2)
	assert.False(t, second.HasMore)
}

func TestSearchCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewPostRepository(db, "english")
	svc := NewSearchService(repo, NewPostViewService(repo))

	post := seedPost(t, db, 1, "Great COFFEE today", models.VisibilityPublic, time.Now())

	result, err := svc.SearchPosts(context.Background(), "coffee", 0, 20, nil)
	require.NoError(t, err)
	require.Len(t, result.Posts, 1)
	assert.Equal(t, post.ID, result.Posts[0].ID)
}
