// File: /jobs/media_cleanup_job.go
package jobs

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"gorm.io/gorm"

	"pulsenet-api/models"
)

// MediaCleanupJob periodically removes uploaded files that were never
// attached to a post. Uploads get a grace period so the upload-then-
// attach flow is not raced.
type MediaCleanupJob struct {
	db        *gorm.DB
	uploadDir string
	interval  time.Duration
	maxAge    time.Duration
	done      chan struct{}
}

func NewMediaCleanupJob(db *gorm.DB, uploadDir string) *MediaCleanupJob {
	return &MediaCleanupJob{
		db:        db,
		uploadDir: uploadDir,
		interval:  time.Hour,
		maxAge:    24 * time.Hour,
		done:      make(chan struct{}),
	}
}

func (j *MediaCleanupJob) Start() {
	go func() {
		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				j.cleanup()
			case <-j.done:
				return
			}
		}
	}()
	log.Println("Media cleanup job started")
}

func (j *MediaCleanupJob) Stop() {
	close(j.done)
}

func (j *MediaCleanupJob) cleanup() {
	entries, err := os.ReadDir(j.uploadDir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Media cleanup: failed to read %s: %v", j.uploadDir, err)
		}
		return
	}

	cutoff := time.Now().Add(-j.maxAge)
	removed := 0

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}

		path := filepath.Join(j.uploadDir, entry.Name())

		var count int64
		if err := j.db.Model(&models.Attachment{}).Where("file_path = ?", path).Count(&count).Error; err != nil {
			log.Printf("Media cleanup: failed to check %s: %v", path, err)
			continue
		}
		if count > 0 {
			continue
		}

		if err := os.Remove(path); err != nil {
			log.Printf("Media cleanup: failed to remove %s: %v", path, err)
			continue
		}
		removed++
	}

	if removed > 0 {
		log.Printf("Media cleanup: removed %d orphaned file(s)", removed)
	}
}
