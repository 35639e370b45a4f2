// File: /repositories/post_repository.go
package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"pulsenet-api/models"
)

// SearchHit is one ranked search candidate before enrichment. Relevance
// comes from the full-text engine; FollowPriority is 0 when the viewer
// follows the author, 1 otherwise.
type SearchHit struct {
	models.Post    `gorm:"embedded"`
	Relevance      float64 `gorm:"column:relevance"`
	FollowPriority int     `gorm:"column:follow_priority"`
}

// PostRepository serves the read path. The per-post-id-set methods are
// deliberately batched: one query covers a whole page, so the query
// count of an assembled page never depends on the page size.
type PostRepository interface {
	PublicFeedPage(ctx context.Context, offset, limit int) ([]models.Post, error)
	SearchPublicPosts(ctx context.Context, query string, viewerID *int64, offset, limit int) ([]SearchHit, error)
	AttachmentsByPostIDs(ctx context.Context, postIDs []int64) (map[int64][]models.Attachment, error)
	LikeCountsByPostIDs(ctx context.Context, postIDs []int64) (map[int64]int64, error)
	CommentCountsByPostIDs(ctx context.Context, postIDs []int64) (map[int64]int64, error)
	LikedPostIDs(ctx context.Context, userID int64, postIDs []int64) (map[int64]bool, error)
	ProfilesByUserIDs(ctx context.Context, userIDs []int64) (map[int64]models.User, error)
}

type postRepository struct {
	db       *gorm.DB
	language string
}

func NewPostRepository(db *gorm.DB, searchLanguage string) PostRepository {
	return &postRepository{db: db, language: searchLanguage}
}

func (r *postRepository) PublicFeedPage(ctx context.Context, offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Where("visibility = ?", models.VisibilityPublic).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

const searchPostsPostgres = `
SELECT p.*,
       ts_rank(to_tsvector(?::regconfig, coalesce(p.text, '')), websearch_to_tsquery(?::regconfig, ?)) AS relevance,
       CASE WHEN p.author_user_id IN (
            SELECT following_user_id FROM follows WHERE follower_user_id = ?
       ) THEN 0 ELSE 1 END AS follow_priority
FROM posts p
WHERE p.visibility = 'public'
  AND to_tsvector(?::regconfig, coalesce(p.text, '')) @@ websearch_to_tsquery(?::regconfig, ?)
ORDER BY follow_priority ASC, relevance DESC, p.created_at DESC
LIMIT ? OFFSET ?`

// Substring fallback for sqlite; relevance is the number of matched
// characters, which is monotonic in the number of occurrences.
const searchPostsSqlite = `
SELECT p.*,
       (LENGTH(LOWER(p.text)) - LENGTH(REPLACE(LOWER(p.text), LOWER(?), ''))) AS relevance,
       CASE WHEN p.author_user_id IN (
            SELECT following_user_id FROM follows WHERE follower_user_id = ?
       ) THEN 0 ELSE 1 END AS follow_priority
FROM posts p
WHERE p.visibility = 'public'
  AND LOWER(p.text) LIKE '%' || LOWER(?) || '%'
ORDER BY follow_priority ASC, relevance DESC, p.created_at DESC
LIMIT ? OFFSET ?`

func (r *postRepository) SearchPublicPosts(ctx context.Context, query string, viewerID *int64, offset, limit int) ([]SearchHit, error) {
	// Anonymous viewers rank with user id 0, which follows nobody.
	var viewer int64
	if viewerID != nil {
		viewer = *viewerID
	}

	var hits []SearchHit
	var err error
	if r.db.Dialector.Name() == "postgres" {
		err = r.db.WithContext(ctx).
			Raw(searchPostsPostgres, r.language, r.language, query, viewer, r.language, r.language, query, limit, offset).
			Scan(&hits).Error
	} else {
		err = r.db.WithContext(ctx).
			Raw(searchPostsSqlite, query, viewer, query, limit, offset).
			Scan(&hits).Error
	}
	return hits, err
}

func (r *postRepository) AttachmentsByPostIDs(ctx context.Context, postIDs []int64) (map[int64][]models.Attachment, error) {
	grouped := make(map[int64][]models.Attachment, len(postIDs))
	if len(postIDs) == 0 {
		return grouped, nil
	}

	var attachments []models.Attachment
	err := r.db.WithContext(ctx).
		Where("post_id IN ?", postIDs).
		Order("id ASC").
		Find(&attachments).Error
	if err != nil {
		return nil, err
	}

	for _, attachment := range attachments {
		grouped[attachment.PostID] = append(grouped[attachment.PostID], attachment)
	}
	return grouped, nil
}

type postCount struct {
	PostID int64
	Count  int64
}

func (r *postRepository) LikeCountsByPostIDs(ctx context.Context, postIDs []int64) (map[int64]int64, error) {
	return r.countByPostIDs(ctx, &models.Like{}, postIDs)
}

func (r *postRepository) CommentCountsByPostIDs(ctx context.Context, postIDs []int64) (map[int64]int64, error) {
	return r.countByPostIDs(ctx, &models.Comment{}, postIDs)
}

func (r *postRepository) countByPostIDs(ctx context.Context, model interface{}, postIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}

	var rows []postCount
	err := r.db.WithContext(ctx).
		Model(model).
		Select("post_id, COUNT(*) AS count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count rows per post: %w", err)
	}

	for _, row := range rows {
		counts[row.PostID] = row.Count
	}
	return counts, nil
}

func (r *postRepository) LikedPostIDs(ctx context.Context, userID int64, postIDs []int64) (map[int64]bool, error) {
	liked := make(map[int64]bool, len(postIDs))
	if len(postIDs) == 0 {
		return liked, nil
	}

	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &ids).Error
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}

func (r *postRepository) ProfilesByUserIDs(ctx context.Context, userIDs []int64) (map[int64]models.User, error) {
	profiles := make(map[int64]models.User, len(userIDs))
	if len(userIDs) == 0 {
		return profiles, nil
	}

	var users []models.User
	err := r.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		profiles[user.UserID] = user
	}
	return profiles, nil
}
