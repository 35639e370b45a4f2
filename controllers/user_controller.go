// File: /controllers/user_controller.go
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
	"pulsenet-api/repositories"
	"pulsenet-api/services"
	"pulsenet-api/utils"
)

type UserController struct {
	db            *gorm.DB
	users         repositories.UserRepository
	notifications *NotificationController
}

func NewUserController(db *gorm.DB, users repositories.UserRepository, notifications *NotificationController) *UserController {
	return &UserController{db: db, users: users, notifications: notifications}
}

type UpdateProfileRequest struct {
	Username    string `json:"username" binding:"required,min=2,max=64"`
	DisplayName string `json:"display_name" binding:"max=128"`
	Bio         string `json:"bio" binding:"max=500"`
	AvatarPath  string `json:"avatar_path"`
}

func userIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid user id")
		return 0, false
	}
	return id, true
}

// GetUser returns a profile with follower/following counts. A user
// exists for this endpoint only once they have a profile row.
func (uc *UserController) GetUser(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	profile, err := uc.users.ProfileByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondError(c, &services.StoreError{Err: err})
		return
	}

	followers, err := uc.users.FollowerCount(ctx, userID)
	if err != nil {
		utils.RespondError(c, &services.StoreError{Err: err})
		return
	}

	following, err := uc.users.FollowingCount(ctx, userID)
	if err != nil {
		utils.RespondError(c, &services.StoreError{Err: err})
		return
	}

	c.JSON(http.StatusOK, models.UserDetail{
		User:           *profile,
		FollowersCount: followers,
		FollowingCount: following,
	})
}

// UpdateProfile creates or replaces the caller's profile row.
func (uc *UserController) UpdateProfile(c *gin.Context) {
	userID := middleware.MustViewerID(c)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	user := models.User{
		UserID:      userID,
		Username:    req.Username,
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
		AvatarPath:  req.AvatarPath,
	}
	err := uc.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"username", "display_name", "bio", "avatar_path", "updated_at"}),
	}).Create(&user).Error
	if err != nil {
		utils.RespondError(c, &services.StoreError{Err: err})
		return
	}

	c.JSON(http.StatusOK, user)
}

// FollowUser is idempotent; following twice leaves a single edge.
func (uc *UserController) FollowUser(c *gin.Context) {
	targetID, ok := userIDParam(c)
	if !ok {
		return
	}
	userID := middleware.MustViewerID(c)
	ctx := c.Request.Context()

	if targetID == userID {
		utils.SendError(c, http.StatusBadRequest, "You cannot follow yourself")
		return
	}

	exists, err := uc.users.AccountExists(ctx, targetID)
	if err != nil {
		utils.RespondError(c, &services.StoreError{Err: err})
		return
	}
	if !exists {
		utils.SendError(c, http.StatusNotFound, "User not found")
		return
	}

	follow := models.Follow{FollowerUserID: userID, FollowingUserID: targetID}
	result := uc.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&follow)
	if result.Error != nil {
		utils.RespondError(c, &services.StoreError{Err: result.Error})
		return
	}

	if result.RowsAffected > 0 {
		uc.notifications.CreateFollowNotification(userID, targetID)
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (uc *UserController) UnfollowUser(c *gin.Context) {
	targetID, ok := userIDParam(c)
	if !ok {
		return
	}
	userID := middleware.MustViewerID(c)

	err := uc.db.Where("follower_user_id = ? AND following_user_id = ?", userID, targetID).
		Delete(&models.Follow{}).Error
	if err != nil {
		utils.RespondError(c, &services.StoreError{Err: err})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (uc *UserController) GetFollowers(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	users, err := uc.users.Followers(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, &services.StoreError{Err: err})
		return
	}
	if users == nil {
		users = []models.User{}
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (uc *UserController) GetFollowing(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	users, err := uc.users.Following(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, &services.StoreError{Err: err})
		return
	}
	if users == nil {
		users = []models.User{}
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}
