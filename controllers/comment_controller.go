package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pulsenet-api/middleware"
	"pulsenet-api/models"
	"pulsenet-api/services"
	"pulsenet-api/utils"
)

type CommentController struct {
	db            *gorm.DB
	notifications *NotificationController
}

func NewCommentController(db *gorm.DB, notifications *NotificationController) *CommentController {
	return &CommentController{db: db, notifications: notifications}
}

type CreateCommentRequest struct {
	Text    string `json:"text"`
	Content string `json:"content"`
}

// GetComments lists a post's comments oldest first, with the author's
// username resolved. Authors without a profile row show an empty
// username.
func (cc *CommentController) GetComments(c *gin.Context) {
	postID, ok := postIDParam(c)
	if !ok {
		return
	}

	var exists int64
	if err := cc.db.Model(&models.Post{}).Where("id = ?", postID).Count(&exists).Error; err != nil {
		utils.RespondError(c, &services.StoreError{Err: err})
		return
	}
	if exists == 0 {
		utils.SendError(c, http.StatusNotFound, "Post not found")
		return
	}

	var comments []models.CommentView
	err := cc.db.Raw(`
		SELECT c.id, c.post_id, c.author_user_id, c.text, c.created_at,
		       COALESCE(u.username, '') AS author_username
		FROM comments c
		LEFT JOIN users u ON u.user_id = c.author_user_id
		WHERE c.post_id = ?
		ORDER BY c.created_at ASC, c.id ASC
	`, postID).Scan(&comments).Error
	if err != nil {
		utils.RespondError(c, &services.StoreError{Err: err})
		return
	}

	if comments == nil {
		comments = []models.CommentView{}
	}
	// Content mirrors text for clients still reading the old field
	for i := range comments {
		comments[i].Content = comments[i].Text
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

func (cc *CommentController) CreateComment(c *gin.Context) {
	postID, ok := postIDParam(c)
	if !ok {
		return
	}
	userID := middleware.MustViewerID(c)

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	text := req.Text
	if text == "" {
		text = req.Content
	}
	if text == "" {
		utils.SendError(c, http.StatusBadRequest, "Comment text is required")
		return
	}

	var post models.Post
	if err := cc.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "Post not found")
			return
		}
		utils.RespondError(c, &services.StoreError{Err: err})
		return
	}

	comment := models.Comment{
		PostID:       postID,
		AuthorUserID: userID,
		Text:         text,
	}
	if err := cc.db.Create(&comment).Error; err != nil {
		utils.RespondError(c, &services.StoreError{Err: err})
		return
	}

	cc.notifications.CreateCommentNotification(userID, post.AuthorUserID, postID)

	c.JSON(http.StatusCreated, comment)
}

func (cc *CommentController) DeleteComment(c *gin.Context) {
	commentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid comment id")
		return
	}
	userID := middleware.MustViewerID(c)

	var comment models.Comment
	if err := cc.db.First(&comment, commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "Comment not found")
			return
		}
		utils.RespondError(c, &services.StoreError{Err: err})
		return
	}

	if comment.AuthorUserID != userID {
		utils.SendError(c, http.StatusForbidden, "You can only delete your own comments")
		return
	}

	if err := cc.db.Delete(&comment).Error; err != nil {
		utils.RespondError(c, &services.StoreError{Err: err})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
