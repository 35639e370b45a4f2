// File: /database/database.go
package database

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pulsenet-api/models"
)

// Initialize opens the database. Postgres DSNs get the postgres driver;
// anything else (file paths, :memory:) is treated as sqlite, which is
// what local development and the tests run on.
func Initialize(databaseURL string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if strings.HasPrefix(databaseURL, "postgres://") || strings.Contains(databaseURL, "host=") {
		dialector = postgres.Open(databaseURL)
	} else {
		dialector = sqlite.Open(databaseURL)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB, searchLanguage string) error {
	err := db.AutoMigrate(
		&models.Account{},
		&models.User{},
		&models.Post{},
		&models.Attachment{},
		&models.Like{},
		&models.Comment{},
		&models.Follow{},
		&models.Notification{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addCustomIndexes(db, searchLanguage); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB, searchLanguage string) error {
	// Composite index serving the feed query's order clause
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_posts_feed ON posts(visibility, created_at DESC, id DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create feed index for posts: %v\n", err)
	}

	// Like counting per post page
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_likes_post ON likes(post_id)").Error; err != nil {
		fmt.Printf("Warning: Could not create post index for likes: %v\n", err)
	}

	// Comment counting per post page
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_comments_post ON comments(post_id)").Error; err != nil {
		fmt.Printf("Warning: Could not create post index for comments: %v\n", err)
	}

	// Full-text index; postgres only, sqlite search falls back to LIKE
	if db.Dialector.Name() == "postgres" {
		stmt := fmt.Sprintf(
			"CREATE INDEX IF NOT EXISTS idx_posts_text_fts ON posts USING GIN (to_tsvector('%s', coalesce(text, '')))",
			searchLanguage,
		)
		if err := db.Exec(stmt).Error; err != nil {
			fmt.Printf("Warning: Could not create full-text index for posts: %v\n", err)
		}
	}

	return nil
}
