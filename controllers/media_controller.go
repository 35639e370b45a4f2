// File: /controllers/media_controller.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pulsenet-api/middleware"
	"pulsenet-api/models"
	"pulsenet-api/services"
	"pulsenet-api/utils"
)

type MediaController struct {
	db        *gorm.DB
	uploadDir string
}

func NewMediaController(db *gorm.DB, uploadDir string) *MediaController {
	return &MediaController{db: db, uploadDir: uploadDir}
}

type AttachRequest struct {
	FilePath string `json:"file_path" binding:"required"`
	Type     string `json:"type" binding:"required"`
}

var mediaTypes = map[string]models.AttachmentType{
	".jpg":  models.AttachmentTypePhoto,
	".jpeg": models.AttachmentTypePhoto,
	".png":  models.AttachmentTypePhoto,
	".gif":  models.AttachmentTypePhoto,
	".mp4":  models.AttachmentTypeVideo,
	".webm": models.AttachmentTypeVideo,
	".mov":  models.AttachmentTypeVideo,
}

// UploadMedia stores the file under a random name and returns the path
// to pass to the attach endpoint. The original name is only used for
// its extension.
func (mc *MediaController) UploadMedia(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "No file provided")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	mediaType, ok := mediaTypes[ext]
	if !ok {
		utils.SendError(c, http.StatusBadRequest, "Unsupported file type")
		return
	}

	if err := os.MkdirAll(mc.uploadDir, 0o755); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to prepare upload directory")
		return
	}

	filename := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	dst := filepath.Join(mc.uploadDir, filename)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to save file")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"file_path": dst,
		"type":      mediaType,
		"filename":  filename,
	})
}

// AttachToPost records an uploaded file against a post the caller owns.
func (mc *MediaController) AttachToPost(c *gin.Context) {
	postID, ok := postIDParam(c)
	if !ok {
		return
	}
	userID := middleware.MustViewerID(c)

	var req AttachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	attachmentType := models.AttachmentType(req.Type)
	if !attachmentType.Valid() {
		utils.SendError(c, http.StatusBadRequest, "Invalid attachment type")
		return
	}

	var post models.Post
	if err := mc.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "Post not found")
			return
		}
		utils.RespondError(c, &services.StoreError{Err: err})
		return
	}

	if post.AuthorUserID != userID {
		utils.SendError(c, http.StatusForbidden, "You can only attach media to your own posts")
		return
	}

	attachment := models.Attachment{
		PostID:   postID,
		Type:     attachmentType,
		FilePath: req.FilePath,
	}
	if err := mc.db.Create(&attachment).Error; err != nil {
		utils.RespondError(c, &services.StoreError{Err: err})
		return
	}

	c.JSON(http.StatusCreated, attachment)
}
