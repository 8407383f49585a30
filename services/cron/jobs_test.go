package cron

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/vaahanhq/vaahan-api/model"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&model.BlogPost{}); err != nil {
		t.Fatalf("migrate db: %v", err)
	}
	return db
}

func TestPublishScheduledPosts(t *testing.T) {
	db := openTestDB(t)

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	posts := []model.BlogPost{
		{Title: "Due", Slug: "due", Content: "x", Status: model.PostStatusScheduled, PublishAt: &past},
		{Title: "Not yet", Slug: "not-yet", Content: "x", Status: model.PostStatusScheduled, PublishAt: &future},
		{Title: "Draft", Slug: "draft", Content: "x", Status: model.PostStatusDraft},
		{Title: "Live", Slug: "live", Content: "x", Status: model.PostStatusPublished, PublishAt: &past},
	}
	for i := range posts {
		if err := db.Create(&posts[i]).Error; err != nil {
			t.Fatalf("create post %q: %v", posts[i].Slug, err)
		}
	}

	manager := NewCronManager(db)
	manager.PublishScheduledPosts()

	assertStatus := func(slug, want string) {
		t.Helper()
		var post model.BlogPost
		if err := db.Where("slug = ?", slug).First(&post).Error; err != nil {
			t.Fatalf("load %q: %v", slug, err)
		}
		if post.Status != want {
			t.Fatalf("post %q: expected status %q, got %q", slug, want, post.Status)
		}
	}

	assertStatus("due", model.PostStatusPublished)
	assertStatus("not-yet", model.PostStatusScheduled)
	assertStatus("draft", model.PostStatusDraft)
	assertStatus("live", model.PostStatusPublished)
}

func TestPublishScheduledPostsIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	past := time.Now().Add(-time.Minute)
	post := model.BlogPost{Title: "Due", Slug: "due", Content: "x", Status: model.PostStatusScheduled, PublishAt: &past}
	if err := db.Create(&post).Error; err != nil {
		t.Fatalf("create post: %v", err)
	}

	manager := NewCronManager(db)
	manager.PublishScheduledPosts()
	manager.PublishScheduledPosts()

	var count int64
	if err := db.Model(&model.BlogPost{}).Where("status = ?", model.PostStatusPublished).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 published post, got %d", count)
	}
}
