// File: /services/postview.go
package services

import (
	"context"

	"pulsenet-api/models"
	"pulsenet-api/repositories"
)

// PostViewService turns raw post rows into client-facing post views with
// attachments, engagement counts and viewer-relative fields.
type PostViewService interface {
	Assemble(ctx context.Context, posts []models.Post, viewerID *int64) ([]models.PostView, error)
}

type postViewService struct {
	posts repositories.PostRepository
}

func NewPostViewService(posts repositories.PostRepository) PostViewService {
	return &postViewService{posts: posts}
}

// Assemble enriches a whole page with one query per concern (attachments,
// like counts, comment counts, author profiles, plus the viewer's likes
// when a viewer is present), so the number of store round-trips does not
// grow with the page size. Any store failure aborts the whole batch.
func (s *postViewService) Assemble(ctx context.Context, posts []models.Post, viewerID *int64) ([]models.PostView, error) {
	views := make([]models.PostView, 0, len(posts))
	if len(posts) == 0 {
		return views, nil
	}

	postIDs := make([]int64, len(posts))
	authorIDs := make([]int64, 0, len(posts))
	seenAuthors := make(map[int64]bool, len(posts))
	for i, post := range posts {
		postIDs[i] = post.ID
		if !seenAuthors[post.AuthorUserID] {
			seenAuthors[post.AuthorUserID] = true
			authorIDs = append(authorIDs, post.AuthorUserID)
		}
	}

	attachments, err := s.posts.AttachmentsByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, &StoreError{Err: err}
	}

	likeCounts, err := s.posts.LikeCountsByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, &StoreError{Err: err}
	}

	commentCounts, err := s.posts.CommentCountsByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, &StoreError{Err: err}
	}

	profiles, err := s.posts.ProfilesByUserIDs(ctx, authorIDs)
	if err != nil {
		return nil, &StoreError{Err: err}
	}

	liked := map[int64]bool{}
	if viewerID != nil {
		liked, err = s.posts.LikedPostIDs(ctx, *viewerID, postIDs)
		if err != nil {
			return nil, &StoreError{Err: err}
		}
	}

	for _, post := range posts {
		view := models.PostView{
			ID:            post.ID,
			AuthorUserID:  post.AuthorUserID,
			Text:          post.Text,
			Visibility:    post.Visibility,
			CreatedAt:     post.CreatedAt,
			UpdatedAt:     post.UpdatedAt,
			LikesCount:    likeCounts[post.ID],
			CommentsCount: commentCounts[post.ID],
			IsLiked:       liked[post.ID],
		}

		// Attachments marshal as [] rather than null when empty
		attachmentViews := make([]models.AttachmentView, 0, len(attachments[post.ID]))
		for _, attachment := range attachments[post.ID] {
			attachmentViews = append(attachmentViews, models.AttachmentView{
				ID:       attachment.ID,
				Type:     attachment.Type,
				FilePath: attachment.FilePath,
			})
		}
		view.Attachments = attachmentViews

		// A missing profile row leaves the author fields empty; the
		// author simply has not completed profile setup.
		if profile, ok := profiles[post.AuthorUserID]; ok {
			view.AuthorUsername = profile.Username
			view.AuthorAvatarPath = profile.AvatarPath
		}

		views = append(views, view)
	}

	return views, nil
}
