package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pulsenet-api/database"
	"pulsenet-api/models"
)

// newTestDB opens a fresh in-memory sqlite database. The pool is pinned
// to one connection so the in-memory database survives across queries.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db, "english"))
	return db
}

func seedPost(t *testing.T, db *gorm.DB, authorID int64, text string, visibility models.Visibility, createdAt time.Time) models.Post {
	t.Helper()
	post := models.Post{
		AuthorUserID: authorID,
		Text:         text,
		Visibility:   visibility,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
	require.NoError(t, db.Create(&post).Error)
	return post
}

func seedProfile(t *testing.T, db *gorm.DB, userID int64, username string) {
	t.Helper()
	require.NoError(t, db.Create(&models.User{UserID: userID, Username: username}).Error)
}

func seedFollow(t *testing.T, db *gorm.DB, followerID, followingID int64) {
	t.Helper()
	require.NoError(t, db.Create(&models.Follow{FollowerUserID: followerID, FollowingUserID: followingID}).Error)
}

func seedLike(t *testing.T, db *gorm.DB, postID, userID int64) {
	t.Helper()
	require.NoError(t, db.Create(&models.Like{PostID: postID, UserID: userID}).Error)
}
