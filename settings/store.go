package settings

import (
	"context"
	"log"
	"time"

	"github.com/vaahanhq/vaahan-api/model"
	"github.com/vaahanhq/vaahan-api/utils/cache"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	cacheKey = "site:settings"
	cacheTTL = 5 * time.Minute
)

// Store is the single source of truth for site-wide configuration. Reads are
// public and fail open to the injected defaults; writes require an admin
// session (enforced at the route layer) and fail closed.
type Store struct {
	db       *gorm.DB
	defaults map[string]interface{}
	cache    *cache.RedisCache // optional read-through cache, may be nil
}

// NewStore creates a settings store. defaults is deep-copied so the caller's
// map cannot be mutated through the store; cache may be nil.
func NewStore(db *gorm.DB, defaults map[string]interface{}, redisCache *cache.RedisCache) *Store {
	return &Store{
		db:       db,
		defaults: DeepMerge(map[string]interface{}{}, defaults),
		cache:    redisCache,
	}
}

// Defaults returns a fresh copy of the injected default tree.
func (s *Store) Defaults() map[string]interface{} {
	return DeepMerge(map[string]interface{}{}, s.defaults)
}

// Load reads every settings row and returns the nested tree merged over the
// defaults (database values win, defaults fill gaps). An empty table is
// seeded from the defaults first, one row per leaf. Load never fails outward:
// on any storage error it logs and returns the defaults.
func (s *Store) Load(ctx context.Context) map[string]interface{} {
	if s.cache != nil {
		var cached map[string]interface{}
		if err := s.cache.GetJSON(ctx, cacheKey, &cached); err == nil && cached != nil {
			return cached
		}
	}

	var rows []model.SiteSetting
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		log.Println("settings: failed to load rows, serving defaults:", err)
		return s.Defaults()
	}

	if len(rows) == 0 {
		if err := s.seed(ctx); err != nil {
			log.Println("settings: failed to seed defaults:", err)
		}
		tree := s.Defaults()
		s.fillCache(ctx, tree)
		return tree
	}

	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, Entry{Category: row.Category, Key: row.Key, Value: row.Value})
	}

	tree := DeepMerge(s.defaults, Reconstruct(entries))
	s.fillCache(ctx, tree)
	return tree
}

// Save deep-merges patch onto the current settings, flattens the merged tree
// and upserts every row, then returns the merged result. Each row is upserted
// independently; there is no whole-document transaction, so concurrent saves
// resolve last-write-wins per key.
func (s *Store) Save(ctx context.Context, patch map[string]interface{}) (map[string]interface{}, error) {
	merged := DeepMerge(s.Load(ctx), patch)

	for _, entry := range Flatten(merged) {
		if err := s.upsert(ctx, entry); err != nil {
			return nil, err
		}
	}

	s.dropCache(ctx)
	return merged, nil
}

// SetOne upserts a single setting without re-merging the whole tree. It is
// the fast path for single-field admin edits.
func (s *Store) SetOne(ctx context.Context, category, name string, value interface{}) error {
	key := category + "." + name
	if category == GeneralCategory {
		key = name
	}

	err := s.upsert(ctx, Entry{Category: category, Key: key, Value: encodeValue(value)})
	if err != nil {
		return err
	}

	s.dropCache(ctx)
	return nil
}

// seed writes one row per default leaf. Called only when the table is empty.
func (s *Store) seed(ctx context.Context) error {
	entries := Flatten(s.defaults)
	rows := make([]model.SiteSetting, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, model.SiteSetting{
			Key:      entry.Key,
			Category: entry.Category,
			Value:    entry.Value,
		})
	}
	return s.db.WithContext(ctx).Create(&rows).Error
}

func (s *Store) upsert(ctx context.Context, entry Entry) error {
	row := model.SiteSetting{
		Key:      entry.Key,
		Category: entry.Category,
		Value:    entry.Value,
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"category", "value", "updated_at"}),
		}).
		Create(&row).Error
}

// fillCache and dropCache never surface errors; the cache is an optimization
// and must not change observable behavior.
func (s *Store) fillCache(ctx context.Context, tree map[string]interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetJSON(ctx, cacheKey, tree, cacheTTL); err != nil {
		log.Println("settings: cache fill failed:", err)
	}
}

func (s *Store) dropCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cacheKey); err != nil {
		log.Println("settings: cache invalidation failed:", err)
	}
}
