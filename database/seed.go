package database

import (
	"fmt"
	"log"

	"github.com/vaahanhq/vaahan-api/model"
	"gorm.io/gorm"
)

// Seeder handles database seeding operations
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// SeedAll runs all seed functions. Site settings are not seeded here — the
// settings store seeds its own defaults lazily on first load.
func (s *Seeder) SeedAll() error {
	log.Println("🌱 Starting database seeding...")

	if err := s.SeedNavigation(); err != nil {
		return fmt.Errorf("failed to seed navigation: %w", err)
	}

	if err := s.SeedAchievements(); err != nil {
		return fmt.Errorf("failed to seed achievements: %w", err)
	}

	if err := s.SeedFAQs(); err != nil {
		return fmt.Errorf("failed to seed FAQs: %w", err)
	}

	log.Println("✅ Database seeding completed successfully!")
	return nil
}

// SeedNavigation creates the default header and footer links
func (s *Seeder) SeedNavigation() error {
	// Check if navigation items already exist
	var count int64
	if err := s.db.Model(&model.NavigationItem{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("⏭️  Navigation items already exist, skipping...")
		return nil
	}

	items := []model.NavigationItem{
		{Label: "Home", Href: "/", Location: model.NavLocationHeader, SortOrder: 1, IsActive: true},
		{Label: "About", Href: "/about", Location: model.NavLocationHeader, SortOrder: 2, IsActive: true},
		{Label: "Features", Href: "/features", Location: model.NavLocationHeader, SortOrder: 3, IsActive: true},
		{Label: "Blog", Href: "/blog", Location: model.NavLocationHeader, SortOrder: 4, IsActive: true},
		{Label: "FAQ", Href: "/faq", Location: model.NavLocationHeader, SortOrder: 5, IsActive: true},
		{Label: "Contact", Href: "/contact", Location: model.NavLocationHeader, SortOrder: 6, IsActive: true},
		{Label: "Privacy Policy", Href: "/privacy", Location: model.NavLocationFooter, SortOrder: 1, IsActive: true},
		{Label: "Terms of Service", Href: "/terms", Location: model.NavLocationFooter, SortOrder: 2, IsActive: true},
		{Label: "Refund Policy", Href: "/refunds", Location: model.NavLocationFooter, SortOrder: 3, IsActive: true},
	}

	if err := s.db.Create(&items).Error; err != nil {
		return err
	}

	log.Printf("✅ Created %d navigation items\n", len(items))
	return nil
}

// SeedAchievements creates the default home page stats
func (s *Seeder) SeedAchievements() error {
	var count int64
	if err := s.db.Model(&model.Achievement{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("⏭️  Achievements already exist, skipping...")
		return nil
	}

	achievements := []model.Achievement{
		{Label: "Rides completed", Value: "1M+", Icon: "car", SortOrder: 1},
		{Label: "Cities", Value: "12", Icon: "map-pin", SortOrder: 2},
		{Label: "Driver partners", Value: "8,000+", Icon: "users", SortOrder: 3},
		{Label: "App rating", Value: "4.8", Icon: "star", SortOrder: 4},
	}

	if err := s.db.Create(&achievements).Error; err != nil {
		return err
	}

	log.Printf("✅ Created %d achievements\n", len(achievements))
	return nil
}

// SeedFAQs creates starter FAQ entries
func (s *Seeder) SeedFAQs() error {
	var count int64
	if err := s.db.Model(&model.FAQ{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("⏭️  FAQs already exist, skipping...")
		return nil
	}

	faqs := []model.FAQ{
		{
			Question:    "How do I book a ride?",
			Answer:      "Download the Vaahan app, set your pickup and drop location, and confirm. A nearby driver accepts within seconds.",
			Category:    "riders",
			SortOrder:   1,
			IsPublished: true,
		},
		{
			Question:    "Which cities is Vaahan available in?",
			Answer:      "We currently operate in 12 cities across India, with more launching every quarter.",
			Category:    "riders",
			SortOrder:   2,
			IsPublished: true,
		},
		{
			Question:    "How do I become a driver partner?",
			Answer:      "Sign up in the Vaahan Driver app with your licence, RC and insurance. Verification usually completes within 48 hours.",
			Category:    "drivers",
			SortOrder:   1,
			IsPublished: true,
		},
		{
			Question:    "What payment methods are supported?",
			Answer:      "UPI, credit/debit cards, and cash. Fares are shown upfront before you confirm the ride.",
			Category:    "payments",
			SortOrder:   1,
			IsPublished: true,
		},
	}

	if err := s.db.Create(&faqs).Error; err != nil {
		return err
	}

	log.Printf("✅ Created %d FAQs\n", len(faqs))
	return nil
}
