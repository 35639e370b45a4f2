// File: /controllers/post_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pulsenet-api/middleware"
	"pulsenet-api/models"
	"pulsenet-api/services"
	"pulsenet-api/utils"
)

type PostController struct {
	db            *gorm.DB
	views         services.PostViewService
	searchService services.SearchService
	notifications *NotificationController
}

func NewPostController(db *gorm.DB, views services.PostViewService, searchService services.SearchService, notifications *NotificationController) *PostController {
	return &PostController{db: db, views: views, searchService: searchService, notifications: notifications}
}

type CreatePostRequest struct {
	Text       string `json:"text"`
	Content    string `json:"content"`
	Visibility string `json:"visibility"`
}

type UpdatePostRequest struct {
	Text       *string `json:"text"`
	Visibility *string `json:"visibility"`
}

func postIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid post id")
		return 0, false
	}
	return id, true
}

func (pc *PostController) CreatePost(c *gin.Context) {
	userID := middleware.MustViewerID(c)

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	// Older clients send the body as "content"
	text := req.Text
	if text == "" {
		text = req.Content
	}
	if text == "" {
		utils.SendError(c, http.StatusBadRequest, "Post text is required")
		return
	}

	visibility := models.VisibilityPublic
	if req.Visibility != "" {
		visibility = models.Visibility(req.Visibility)
		if !visibility.Valid() {
			utils.SendError(c, http.StatusBadRequest, "Invalid visibility value")
			return
		}
	}

	post := models.Post{
		AuthorUserID: userID,
		Text:         text,
		Visibility:   visibility,
	}
	if err := pc.db.Create(&post).Error; err != nil {
		utils.RespondError(c, &services.StoreError{Err: err})
		return
	}

	views, err := pc.views.Assemble(c.Request.Context(), []models.Post{post}, &userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, views[0])
}

// GetPost returns a single assembled post. Private posts are visible
// only to their author and otherwise indistinguishable from missing
// ones.
func (pc *PostController) GetPost(c *gin.Context) {
	postID, ok := postIDParam(c)
	if !ok {
		return
	}
	viewerID := middleware.ViewerID(c)

	var post models.Post
	if err := pc.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "Post not found")
			return
		}
		utils.RespondError(c, &services.StoreError{Err: err})
		return
	}

	if post.Visibility == models.VisibilityPrivate {
		if viewerID == nil || *viewerID != post.AuthorUserID {
			utils.SendError(c, http.StatusNotFound, "Post not found")
			return
		}
	}

	views, err := pc.views.Assemble(c.Request.Context(), []models.Post{post}, viewerID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, views[0])
}

func (pc *PostController) UpdatePost(c *gin.Context) {
	postID, ok := postIDParam(c)
	if !ok {
		return
	}
	userID := middleware.MustViewerID(c)

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	var post models.Post
	if err := pc.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "Post not found")
			return
		}
		utils.RespondError(c, &services.StoreError{Err: err})
		return
	}

	if post.AuthorUserID != userID {
		utils.SendError(c, http.StatusForbidden, "You can only edit your own posts")
		return
	}

	updates := map[string]interface{}{}
	if req.Text != nil {
		if *req.Text == "" {
			utils.SendError(c, http.StatusBadRequest, "Post text cannot be empty")
			return
		}
		updates["text"] = *req.Text
	}
	if req.Visibility != nil {
		visibility := models.Visibility(*req.Visibility)
		if !visibility.Valid() {
			utils.SendError(c, http.StatusBadRequest, "Invalid visibility value")
			return
		}
		updates["visibility"] = visibility
	}

	if len(updates) > 0 {
		if err := pc.db.Model(&post).Updates(updates).Error; err != nil {
			utils.RespondError(c, &services.StoreError{Err: err})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeletePost removes the post and its attachments, likes and comments
// in one transaction, so a failure partway leaves nothing orphaned.
func (pc *PostController) DeletePost(c *gin.Context) {
	postID, ok := postIDParam(c)
	if !ok {
		return
	}
	userID := middleware.MustViewerID(c)

	var post models.Post
	if err := pc.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "Post not found")
			return
		}
		utils.RespondError(c, &services.StoreError{Err: err})
		return
	}

	if post.AuthorUserID != userID {
		utils.SendError(c, http.StatusForbidden, "You can only delete your own posts")
		return
	}

	err := pc.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&models.Attachment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
	if err != nil {
		utils.RespondError(c, &services.StoreError{Err: err})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// LikePost is idempotent: liking an already-liked post succeeds without
// creating a second row.
func (pc *PostController) LikePost(c *gin.Context) {
	postID, ok := postIDParam(c)
	if !ok {
		return
	}
	userID := middleware.MustViewerID(c)

	var post models.Post
	if err := pc.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "Post not found")
			return
		}
		utils.RespondError(c, &services.StoreError{Err: err})
		return
	}

	like := models.Like{PostID: postID, UserID: userID}
	result := pc.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&like)
	if result.Error != nil {
		utils.RespondError(c, &services.StoreError{Err: result.Error})
		return
	}

	if result.RowsAffected > 0 {
		pc.notifications.CreateLikeNotification(userID, post.AuthorUserID, postID)
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (pc *PostController) UnlikePost(c *gin.Context) {
	postID, ok := postIDParam(c)
	if !ok {
		return
	}
	userID := middleware.MustViewerID(c)

	err := pc.db.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.Like{}).Error
	if err != nil {
		utils.RespondError(c, &services.StoreError{Err: err})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetUserPosts lists one author's posts, newest first. Private posts
// appear only when the author views their own list.
func (pc *PostController) GetUserPosts(c *gin.Context) {
	authorID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid user id")
		return
	}
	viewerID := middleware.ViewerID(c)

	query := pc.db.Where("author_user_id = ?", authorID)
	if viewerID == nil || *viewerID != authorID {
		query = query.Where("visibility = ?", models.VisibilityPublic)
	}

	var posts []models.Post
	if err := query.Order("created_at DESC, id DESC").Find(&posts).Error; err != nil {
		utils.RespondError(c, &services.StoreError{Err: err})
		return
	}

	views, err := pc.views.Assemble(c.Request.Context(), posts, viewerID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, views)
}

func (pc *PostController) SearchPosts(c *gin.Context) {
	offset, limit, ok := utils.ParsePagination(c)
	if !ok {
		return
	}

	result, err := pc.searchService.SearchPosts(c.Request.Context(), c.Query("q"), offset, limit, middleware.ViewerID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
