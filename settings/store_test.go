package settings

import (
	"context"
	"testing"

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
	if err := db.AutoMigrate(&model.SiteSetting{}); err != nil {
		t.Fatalf("migrate db: %v", err)
	}
	return db
}

func testDefaults() map[string]interface{} {
	return map[string]interface{}{
		"contact": map[string]interface{}{
			"email": "old@x.com",
			"phone": "+91 98765 43210",
		},
		"theme": map[string]interface{}{
			"dark_mode": false,
		},
		"maintenance_mode": false,
	}
}

func TestLoadSeedsEmptyTable(t *testing.T) {
	db := openTestDB(t)
	store := NewStore(db, testDefaults(), nil)

	tree := store.Load(context.Background())

	contact, ok := tree["contact"].(map[string]interface{})
	if !ok || contact["email"] != "old@x.com" {
		t.Fatalf("expected defaults back, got %#v", tree)
	}

	// One row per default leaf must now exist
	var count int64
	if err := db.Model(&model.SiteSetting{}).Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 4 {
		t.Fatalf("expected 4 seeded rows, got %d", count)
	}

	var row model.SiteSetting
	if err := db.Where("key = ?", "contact.email").First(&row).Error; err != nil {
		t.Fatalf("expected contact.email row: %v", err)
	}
	if row.Category != "contact" {
		t.Fatalf("expected category consistent with key prefix, got %q", row.Category)
	}
}

func TestLoadDatabaseValueWinsDefaultsFillGaps(t *testing.T) {
	db := openTestDB(t)
	store := NewStore(db, testDefaults(), nil)

	row := model.SiteSetting{Key: "contact.email", Category: "contact", Value: `"db@x.com"`}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("create row: %v", err)
	}

	tree := store.Load(context.Background())
	contact := tree["contact"].(map[string]interface{})

	if contact["email"] != "db@x.com" {
		t.Fatalf("expected database value to win, got %v", contact["email"])
	}
	if contact["phone"] != "+91 98765 43210" {
		t.Fatalf("expected default to fill missing key, got %v", contact["phone"])
	}
	if tree["maintenance_mode"] != false {
		t.Fatalf("expected top-level default present, got %#v", tree["maintenance_mode"])
	}
}

func TestSaveMergesAtCategoryLevel(t *testing.T) {
	db := openTestDB(t)
	store := NewStore(db, testDefaults(), nil)

	// Seed via first load
	store.Load(context.Background())

	merged, err := store.Save(context.Background(), map[string]interface{}{
		"contact": map[string]interface{}{"email": "new@x.com"},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	contact := merged["contact"].(map[string]interface{})
	if contact["email"] != "new@x.com" {
		t.Fatalf("expected patched email, got %v", contact["email"])
	}
	if contact["phone"] != "+91 98765 43210" {
		t.Fatalf("expected sibling key unchanged, got %v", contact["phone"])
	}

	// And a fresh load sees the persisted value
	reloaded := store.Load(context.Background())
	if reloaded["contact"].(map[string]interface{})["email"] != "new@x.com" {
		t.Fatal("expected saved value visible on reload")
	}
}

func TestSetOneUpsertsSingleRow(t *testing.T) {
	db := openTestDB(t)
	store := NewStore(db, testDefaults(), nil)

	if err := store.SetOne(context.Background(), "theme", "dark_mode", true); err != nil {
		t.Fatalf("set one: %v", err)
	}

	var row model.SiteSetting
	if err := db.Where("key = ?", "theme.dark_mode").First(&row).Error; err != nil {
		t.Fatalf("expected theme.dark_mode row: %v", err)
	}
	if row.Value != "true" {
		t.Fatalf("expected JSON-encoded value, got %q", row.Value)
	}

	// Upsert same key again, no duplicate rows
	if err := store.SetOne(context.Background(), "theme", "dark_mode", false); err != nil {
		t.Fatalf("set one again: %v", err)
	}
	var count int64
	if err := db.Model(&model.SiteSetting{}).Where("key = ?", "theme.dark_mode").Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 row after upsert, got %d", count)
	}
}

func TestSetOneGeneralCategoryKeepsBareKey(t *testing.T) {
	db := openTestDB(t)
	store := NewStore(db, testDefaults(), nil)

	if err := store.SetOne(context.Background(), GeneralCategory, "maintenance_mode", true); err != nil {
		t.Fatalf("set one: %v", err)
	}

	var row model.SiteSetting
	if err := db.Where("key = ?", "maintenance_mode").First(&row).Error; err != nil {
		t.Fatalf("expected bare-key row for general setting: %v", err)
	}
	if row.Category != GeneralCategory {
		t.Fatalf("expected general category, got %q", row.Category)
	}
}

func TestLoadFailsOpenOnStorageError(t *testing.T) {
	db := openTestDB(t)
	store := NewStore(db, testDefaults(), nil)

	// Kill the connection so every query errors
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("close db: %v", err)
	}

	tree := store.Load(context.Background())
	contact, ok := tree["contact"].(map[string]interface{})
	if !ok || contact["email"] != "old@x.com" {
		t.Fatalf("expected defaults on storage error, got %#v", tree)
	}
}

func TestSaveFailsClosedOnStorageError(t *testing.T) {
	db := openTestDB(t)
	store := NewStore(db, testDefaults(), nil)

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("close db: %v", err)
	}

	if _, err := store.Save(context.Background(), map[string]interface{}{
		"contact": map[string]interface{}{"email": "new@x.com"},
	}); err == nil {
		t.Fatal("expected save to surface the storage error")
	}
}

func TestDefaultsAreCopied(t *testing.T) {
	db := openTestDB(t)
	defaults := testDefaults()
	store := NewStore(db, defaults, nil)

	// Mutating the caller's map must not leak into the store
	defaults["contact"].(map[string]interface{})["email"] = "mutated@x.com"

	tree := store.Defaults()
	if tree["contact"].(map[string]interface{})["email"] != "old@x.com" {
		t.Fatal("store defaults were mutated through the caller's map")
	}
}
