package router

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/vaahanhq/vaahan-api/config"
	"github.com/vaahanhq/vaahan-api/database"
	"github.com/vaahanhq/vaahan-api/handlers"
	achievement_handlers "github.com/vaahanhq/vaahan-api/handlers/achievement"
	auth_handlers "github.com/vaahanhq/vaahan-api/handlers/auth"
	blog_handlers "github.com/vaahanhq/vaahan-api/handlers/blog"
	contact_handlers "github.com/vaahanhq/vaahan-api/handlers/contact"
	faq_handlers "github.com/vaahanhq/vaahan-api/handlers/faq"
	media_handlers "github.com/vaahanhq/vaahan-api/handlers/media"
	navigation_handlers "github.com/vaahanhq/vaahan-api/handlers/navigation"
	reel_handlers "github.com/vaahanhq/vaahan-api/handlers/reel"
	settings_handlers "github.com/vaahanhq/vaahan-api/handlers/sitesettings"
	team_handlers "github.com/vaahanhq/vaahan-api/handlers/team"
	"github.com/vaahanhq/vaahan-api/settings"
	"github.com/vaahanhq/vaahan-api/utils"
	"github.com/vaahanhq/vaahan-api/utils/middleware"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, store database.Storage, settingsStore *settings.Store) {
	getEnv, err := config.Get()
	if err != nil {
		log.Fatal("Failed to load environment configuration")
	}

	if getEnv.ADMIN_USERNAME == "" || getEnv.ADMIN_PASSWORD_HASH == "" {
		log.Fatal("ADMIN_USERNAME and ADMIN_PASSWORD_HASH environment variables are not set")
	}

	// Get DB instance (type assert from interface)
	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		log.Fatal("Failed to get GORM DB instance")
	}

	// Initialize handlers
	authHandler := auth_handlers.NewAuthHandler(
		getEnv.ADMIN_USERNAME,
		getEnv.ADMIN_PASSWORD_HASH,
		config.IsProduction(),
	)
	settingsHandler := settings_handlers.NewSettingsHandler(settingsStore)
	blogHandler := blog_handlers.NewBlogHandler(db)
	teamHandler := team_handlers.NewTeamHandler(db)
	faqHandler := faq_handlers.NewFAQHandler(db)
	achievementHandler := achievement_handlers.NewAchievementHandler(db)
	navigationHandler := navigation_handlers.NewNavigationHandler(db)
	reelHandler := reel_handlers.NewReelHandler(db)
	mediaHandler := media_handlers.NewMediaHandler(db)
	contactHandler := contact_handlers.NewContactHandler(db, getEnv.CONTACT_RELAY_URL)

	// Apply security middleware
	allowedOrigins := getEnv.ALLOWED_ORIGINS
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000,http://localhost:3001"
	}

	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    allowedOrigins,
		RateLimitRequests: 100,             // 100 requests
		RateLimitWindow:   1 * time.Minute, // per minute
	})

	// Health check endpoint (public)
	app.Get("/ping", utils.MakeHTTPHandleFunc(handlers.HandleCheckHealth, store))

	// API v1 group
	api := app.Group("/api/v1")

	// Auth routes
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/verify", authHandler.Verify)

	// Public content routes — everything the website renders
	api.Get("/settings", settingsHandler.GetSettings)
	api.Get("/blog", blogHandler.ListPublished)
	api.Get("/blog/:slug", blogHandler.GetBySlug)
	api.Get("/team", teamHandler.ListMembers)
	api.Get("/faqs", faqHandler.ListFAQs)
	api.Get("/achievements", achievementHandler.ListAchievements)
	api.Get("/navigation", navigationHandler.ListItems)
	api.Get("/reels", reelHandler.ListReels)
	api.Post("/contact", contactHandler.Submit)

	// Settings writes sit at the public path but behind the session gate,
	// matching the admin panel's PUT/POST /settings contract
	adminOnly := middleware.AdminRequired()
	api.Put("/settings", adminOnly, settingsHandler.UpdateSettings)
	api.Post("/settings", adminOnly, settingsHandler.UpdateSettings)
	api.Put("/settings/:category/:key", adminOnly, settingsHandler.UpdateSetting)

	// Admin routes — every mutating endpoint re-checks the session cookies
	admin := api.Group("/admin", adminOnly)

	adminBlog := admin.Group("/blog")
	adminBlog.Get("/", blogHandler.ListAll)
	adminBlog.Post("/", blogHandler.CreatePost)
	adminBlog.Put("/:id", blogHandler.UpdatePost)
	adminBlog.Delete("/:id", blogHandler.DeletePost)

	adminTeam := admin.Group("/team")
	adminTeam.Get("/", teamHandler.ListAllMembers)
	adminTeam.Post("/", teamHandler.CreateMember)
	adminTeam.Put("/reorder", teamHandler.ReorderMembers)
	adminTeam.Put("/:id", teamHandler.UpdateMember)
	adminTeam.Delete("/:id", teamHandler.DeleteMember)

	adminFAQs := admin.Group("/faqs")
	adminFAQs.Get("/", faqHandler.ListAllFAQs)
	adminFAQs.Post("/", faqHandler.CreateFAQ)
	adminFAQs.Put("/reorder", faqHandler.ReorderFAQs)
	adminFAQs.Put("/:id", faqHandler.UpdateFAQ)
	adminFAQs.Delete("/:id", faqHandler.DeleteFAQ)

	adminAchievements := admin.Group("/achievements")
	adminAchievements.Post("/", achievementHandler.CreateAchievement)
	adminAchievements.Put("/reorder", achievementHandler.ReorderAchievements)
	adminAchievements.Put("/:id", achievementHandler.UpdateAchievement)
	adminAchievements.Delete("/:id", achievementHandler.DeleteAchievement)

	adminNavigation := admin.Group("/navigation")
	adminNavigation.Get("/", navigationHandler.ListAllItems)
	adminNavigation.Post("/", navigationHandler.CreateItem)
	adminNavigation.Put("/reorder", navigationHandler.ReorderItems)
	adminNavigation.Put("/:id", navigationHandler.UpdateItem)
	adminNavigation.Delete("/:id", navigationHandler.DeleteItem)

	adminReels := admin.Group("/reels")
	adminReels.Get("/", reelHandler.ListAllReels)
	adminReels.Post("/", reelHandler.CreateReel)
	adminReels.Put("/reorder", reelHandler.ReorderReels)
	adminReels.Put("/:id", reelHandler.UpdateReel)
	adminReels.Delete("/:id", reelHandler.DeleteReel)

	adminMedia := admin.Group("/media")
	adminMedia.Get("/", mediaHandler.ListMedia)
	adminMedia.Post("/", mediaHandler.CreateMedia)
	adminMedia.Put("/:uuid", mediaHandler.UpdateMedia)
	adminMedia.Delete("/:uuid", mediaHandler.DeleteMedia)

	admin.Get("/contact", contactHandler.ListSubmissions)
}
