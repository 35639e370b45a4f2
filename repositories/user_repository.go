// File: /repositories/user_repository.go
package repositories

import (
	"context"

	"gorm.io/gorm"

	"pulsenet-api/models"
)

type UserRepository interface {
	AccountExists(ctx context.Context, userID int64) (bool, error)
	ProfileByID(ctx context.Context, userID int64) (*models.User, error)
	FollowerCount(ctx context.Context, userID int64) (int64, error)
	FollowingCount(ctx context.Context, userID int64) (int64, error)
	Followers(ctx context.Context, userID int64) ([]models.User, error)
	Following(ctx context.Context, userID int64) ([]models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) AccountExists(ctx context.Context, userID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("id = ?", userID).
		Count(&count).Error
	return count > 0, err
}

// ProfileByID returns gorm.ErrRecordNotFound when the user never
// completed profile setup.
func (r *userRepository) ProfileByID(ctx context.Context, userID int64) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FollowerCount(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("following_user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *userRepository) FollowingCount(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *userRepository) Followers(ctx context.Context, userID int64) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Joins("JOIN follows ON follows.follower_user_id = users.user_id").
		Where("follows.following_user_id = ?", userID).
		Order("follows.created_at DESC").
		Find(&users).Error
	return users, err
}

func (r *userRepository) Following(ctx context.Context, userID int64) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Joins("JOIN follows ON follows.following_user_id = users.user_id").
		Where("follows.follower_user_id = ?", userID).
		Order("follows.created_at DESC").
		Find(&users).Error
	return users, err
}
