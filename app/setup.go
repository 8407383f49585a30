package app

import (
	"fmt"
	"log"
	"os"

	"github.com/vaahanhq/vaahan-api/api"
	"github.com/vaahanhq/vaahan-api/config"
	"github.com/vaahanhq/vaahan-api/database"
	"github.com/vaahanhq/vaahan-api/router"
	"github.com/vaahanhq/vaahan-api/services/cron"
	"github.com/vaahanhq/vaahan-api/settings"
	"github.com/vaahanhq/vaahan-api/utils/cache"
	"gorm.io/gorm"
)

func SetupAndRunServer() error {

	// Load ENV
	if err := config.LoadENV(); err != nil {
		return err
	}

	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	// Initialize GORM database connection
	store, err := database.StartGORM()
	if err != nil {
		print("Check whether the Postgres is running or not\n")
		return err
	}

	if err := store.Init(); err != nil {
		print("Failed to initialize database tables\n")
		return err
	}

	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		return fmt.Errorf("failed to get GORM DB instance")
	}

	// Seed starter content (navigation, achievements, FAQs). Settings seed
	// themselves lazily on first load.
	if err := database.NewSeeder(db).SeedAll(); err != nil {
		log.Println("Warning: content seeding failed:", err)
	}

	// Optional Redis cache for settings reads. The site works without it.
	var redisCache *cache.RedisCache
	if getEnv.REDIS_URL != "" {
		redisCache, err = cache.NewRedisCache(getEnv.REDIS_URL)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis: %v. Settings cache disabled.", err)
			redisCache = nil
		}
	}

	settingsStore := settings.NewStore(db, settings.DefaultSettings(), redisCache)

	// Scheduled blog post publisher (only if enabled via environment variable)
	var cronManager *cron.CronManager
	if os.Getenv("CRON_ENABLED") != "false" { // Default to enabled
		cronManager = cron.NewCronManager(db)
		if err := cronManager.Start(); err != nil {
			log.Println("Warning: Failed to start cron jobs:", err)
			// Don't fail the app, just log the warning
		}
	}

	// Defer Closing DB and stopping cron jobs
	defer func() {
		if cronManager != nil {
			cronManager.Stop()
		}
		if redisCache != nil {
			redisCache.Close()
		}
		store.Close()
	}()

	// Init API
	var server *api.APIServer = api.NewAPIServer(fmt.Sprintf(":%d", getEnv.PORT))
	app := server.GetEngine()

	// Setup Routes
	router.SetupRoutes(app, store, settingsStore)

	// Get the PORT & Start the Server
	return server.Run()
}
