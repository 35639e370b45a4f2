// File: /controllers/notification_controller.go
package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pulsenet-api/middleware"
	"pulsenet-api/models"
	"pulsenet-api/services"
	"pulsenet-api/utils"
)

type NotificationController struct {
	db *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{db: db}
}

func (nc *NotificationController) GetNotifications(c *gin.Context) {
	userID := middleware.MustViewerID(c)

	offset, limit, ok := utils.ParsePagination(c)
	if !ok {
		return
	}
	offset, limit = services.ClampPage(offset, limit)

	var notifications []models.Notification
	err := nc.db.Where("target_user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&notifications).Error
	if err != nil {
		utils.RespondError(c, &services.StoreError{Err: err})
		return
	}

	var unread int64
	if err := nc.db.Model(&models.Notification{}).
		Where("target_user_id = ? AND is_read = ?", userID, false).
		Count(&unread).Error; err != nil {
		utils.RespondError(c, &services.StoreError{Err: err})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"unread_count":  unread,
	})
}

func (nc *NotificationController) MarkAsRead(c *gin.Context) {
	userID := middleware.MustViewerID(c)

	notificationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid notification id")
		return
	}

	result := nc.db.Model(&models.Notification{}).
		Where("id = ? AND target_user_id = ?", notificationID, userID).
		Update("is_read", true)
	if result.Error != nil {
		utils.RespondError(c, &services.StoreError{Err: result.Error})
		return
	}
	if result.RowsAffected == 0 {
		utils.SendError(c, http.StatusNotFound, "Notification not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// The Create* helpers run inline with the triggering request; a failed
// notification insert is logged and never fails the request itself.
// Self-actions (liking your own post) produce no notification.

func (nc *NotificationController) CreateFollowNotification(actorID, targetID int64) {
	nc.create(models.Notification{
		Type:         models.NotificationTypeFollow,
		ActorUserID:  actorID,
		TargetUserID: targetID,
	})
}

func (nc *NotificationController) CreateLikeNotification(actorID, targetID, postID int64) {
	nc.create(models.Notification{
		Type:         models.NotificationTypeLike,
		ActorUserID:  actorID,
		TargetUserID: targetID,
		PostID:       &postID,
	})
}

func (nc *NotificationController) CreateCommentNotification(actorID, targetID, postID int64) {
	nc.create(models.Notification{
		Type:         models.NotificationTypeComment,
		ActorUserID:  actorID,
		TargetUserID: targetID,
		PostID:       &postID,
	})
}

func (nc *NotificationController) create(n models.Notification) {
	if n.ActorUserID == n.TargetUserID {
		return
	}
	if err := nc.db.Create(&n).Error; err != nil {
		log.Printf("Failed to create %s notification for user %d: %v", n.Type, n.TargetUserID, err)
	}
}
