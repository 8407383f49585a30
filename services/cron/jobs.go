package cron

import (
	"log"
	"time"

	"github.com/vaahanhq/vaahan-api/model"
)

// PublishScheduledPosts flips scheduled blog posts to published once their
// publish_at time has passed. Runs every minute so a scheduled post goes live
// within a minute of its target time.
func (m *CronManager) PublishScheduledPosts() {
	now := time.Now()

	result := m.db.Model(&model.BlogPost{}).
		Where("status = ? AND publish_at IS NOT NULL AND publish_at <= ?", model.PostStatusScheduled, now).
		Update("status", model.PostStatusPublished)

	if result.Error != nil {
		log.Println("[CRON] Failed to publish scheduled posts:", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[CRON] Published %d scheduled post(s)\n", result.RowsAffected)
	}
}
