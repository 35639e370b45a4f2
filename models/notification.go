package models

import (
	"time"
)

type NotificationType string

const (
	NotificationTypeFollow  NotificationType = "follow"
	NotificationTypeLike    NotificationType = "like"
	NotificationTypeComment NotificationType = "comment"
)

type Notification struct {
	ID           int64            `json:"id" gorm:"primaryKey"`
	Type         NotificationType `json:"type" gorm:"not null;size:32"`
	ActorUserID  int64            `json:"actor_user_id" gorm:"not null"`
	TargetUserID int64            `json:"target_user_id" gorm:"not null;index"`
	PostID       *int64           `json:"post_id,omitempty"`
	IsRead       bool             `json:"is_read" gorm:"default:false"`
	CreatedAt    time.Time        `json:"created_at"`
}

// Message returns a short human-readable description of the event.
func (n *Notification) Message() string {
	switch n.Type {
	case NotificationTypeFollow:
		return "started following you"
	case NotificationTypeLike:
		return "liked your post"
	case NotificationTypeComment:
		return "commented on your post"
	default:
		return "interacted with your content"
	}
}
