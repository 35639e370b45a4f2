package jobs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pulsenet-api/database"
	"pulsenet-api/models"
)

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

func writeUpload(t *testing.T, dir, name string, modTime time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o644))
	require.NoError(t, os.Chtimes(path, modTime, modTime))
	return path
}

func TestCleanupRemovesOnlyOldOrphans(t *testing.T) {
	db := newTestDB(t)
	dir := t.TempDir()

	old := time.Now().Add(-48 * time.Hour)
	orphan := writeUpload(t, dir, "orphan.jpg", old)
	attached := writeUpload(t, dir, "attached.jpg", old)
	fresh := writeUpload(t, dir, "fresh.jpg", time.Now())

	post := models.Post{AuthorUserID: 1, Text: "with media", Visibility: models.VisibilityPublic}
	require.NoError(t, db.Create(&post).Error)
	require.NoError(t, db.Create(&models.Attachment{
		PostID:   post.ID,
		Type:     models.AttachmentTypePhoto,
		FilePath: attached,
	}).Error)

	job := NewMediaCleanupJob(db, dir)
	job.cleanup()

	_, err := os.Stat(orphan)
	assert.True(t, os.IsNotExist(err), "old orphaned upload should be removed")

	_, err = os.Stat(attached)
	assert.NoError(t, err, "attached upload must survive")

	_, err = os.Stat(fresh)
	assert.NoError(t, err, "recent upload is inside the grace period")
}

func TestCleanupMissingDirectory(t *testing.T) {
	db := newTestDB(t)
	job := NewMediaCleanupJob(db, filepath.Join(t.TempDir(), "does-not-exist"))

	// Must not panic or log spuriously when nothing was ever uploaded
	job.cleanup()
}
