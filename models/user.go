package models

import (
	"time"
)

// Account is the authentication identity created at registration.
// The public profile lives in User and may not exist yet; a missing
// profile row is normal, not an error.
type Account struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Login        string    `json:"login" gorm:"uniqueIndex;not null;size:64"`
	PasswordHash string    `json:"-" gorm:"not null;size:255"`
	Email        string    `json:"email,omitempty" gorm:"size:255"`
	CreatedAt    time.Time `json:"created_at"`
}

// User is the public profile, keyed by the owning account's id.
type User struct {
	UserID      int64     `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	Username    string    `json:"username" gorm:"not null;size:64;index"`
	DisplayName string    `json:"display_name" gorm:"size:255"`
	Bio         string    `json:"bio" gorm:"type:text"`
	AvatarPath  string    `json:"avatar_path" gorm:"size:500"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Follow struct {
	ID              int64     `json:"id" gorm:"primaryKey"`
	FollowerUserID  int64     `json:"follower_user_id" gorm:"not null;uniqueIndex:ux_follows_pair;index"`
	FollowingUserID int64     `json:"following_user_id" gorm:"not null;uniqueIndex:ux_follows_pair;index"`
	CreatedAt       time.Time `json:"created_at"`
}

// UserDetail is the user endpoint payload with follow counts attached.
type UserDetail struct {
	User
	FollowersCount int64 `json:"followers_count"`
	FollowingCount int64 `json:"following_count"`
}
