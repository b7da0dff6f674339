package main

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"newsroom-backend/internal/config"
	"newsroom-backend/internal/database"
	"newsroom-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds a demo tenant with users for every role, a pair of sources, a few
// categories and a handful of articles. Re-running is safe: the script
// stops when the demo tenant already exists.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	var existing models.Tenant
	if err := db.Where("slug = ?", "demo-newsroom").First(&existing).Error; err == nil {
		log.Println("Demo tenant already exists, nothing to do")
		return
	}

	if err := db.Transaction(seed); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Demo data loaded")
	log.Println("Login: admin@demo-newsroom.test / demo-password")
}

func seed(tx *gorm.DB) error {
	branding, _ := json.Marshal(map[string]string{
		"primary_color": "#1a3c6e",
		"logo_url":      "https://demo-newsroom.test/logo.svg",
	})

	tenant := models.Tenant{
		Name:           "Demo Newsroom",
		Slug:           "demo-newsroom",
		BrandingConfig: branding,
	}
	if err := tx.Create(&tenant).Error; err != nil {
		return fmt.Errorf("create tenant: %w", err)
	}

	users := []struct {
		email string
		name  string
		role  models.UserRole
	}{
		{"admin@demo-newsroom.test", "Demo Admin", models.RoleAdmin},
		{"editor@demo-newsroom.test", "Demo Editor", models.RoleEditor},
		{"viewer@demo-newsroom.test", "Demo Viewer", models.RoleViewer},
	}

	var editorID uuid.UUID
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		user := models.User{
			TenantID:     tenant.ID,
			Email:        u.email,
			Name:         u.name,
			Role:         u.role,
			PasswordHash: string(hash),
		}
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("create user %s: %w", u.email, err)
		}
		if u.role == models.RoleEditor {
			editorID = user.ID
		}
	}

	sources := []models.NewsSource{
		{
			TenantID:        tenant.ID,
			Name:            "City Wire",
			BaseURL:         "https://citywire.example.com/rss",
			Type:            models.SourceTypeNews,
			Category:        "Local",
			UpdateFrequency: models.FrequencyHourly,
		},
		{
			TenantID:        tenant.ID,
			Name:            "Statehouse Blog",
			BaseURL:         "https://statehouse.example.com/feed",
			Type:            models.SourceTypeBlog,
			Category:        "Politics",
			UpdateFrequency: models.FrequencyManual,
		},
	}
	for i := range sources {
		if err := tx.Create(&sources[i]).Error; err != nil {
			return fmt.Errorf("create source %s: %w", sources[i].Name, err)
		}
	}

	categories := []models.Category{
		{TenantID: tenant.ID, Name: "Local Politics", Slug: "local-politics", Description: "City and county government"},
		{TenantID: tenant.ID, Name: "Business", Slug: "business", Description: "Local economy and commerce"},
		{TenantID: tenant.ID, Name: "Sports", Slug: "sports"},
	}
	for i := range categories {
		if err := tx.Create(&categories[i]).Error; err != nil {
			return fmt.Errorf("create category %s: %w", categories[i].Name, err)
		}
	}

	publishedAt := time.Now().Add(-48 * time.Hour)
	slug := "budget-vote-scheduled"
	articles := []models.Article{
		{
			TenantID:    tenant.ID,
			SourceID:    &sources[0].ID,
			Title:       "Transit authority expands weekend service",
			Link:        "https://citywire.example.com/articles/transit-weekend-service",
			Description: "Buses will run every 20 minutes on Saturdays starting next month.",
			Status:      models.StatusDraft,
			Tags:        []string{"transit", "city"},
		},
		{
			TenantID:       tenant.ID,
			SourceID:       &sources[1].ID,
			CreatorID:      &editorID,
			Title:          "Budget vote scheduled for Monday",
			Link:           "https://demo-newsroom.test/articles/budget-vote-scheduled",
			Slug:           &slug,
			Content:        "The city council will vote on the annual budget at its Monday session.",
			Status:         models.StatusPublished,
			PublishedAt:    &publishedAt,
			SeoTitle:       "Budget Vote Scheduled for Monday",
			SeoDescription: "The city council votes on the annual budget Monday.",
			SeoKeywords:    "budget, city council, vote",
			Tags:           []string{"budget", "politics"},
		},
		{
			TenantID:  tenant.ID,
			SourceID:  &sources[1].ID,
			CreatorID: &editorID,
			Title:     "Archived: stadium naming rights",
			Link:      "https://demo-newsroom.test/articles/stadium-naming-rights",
			Status:    models.StatusArchived,
		},
	}
	for i := range articles {
		if err := tx.Create(&articles[i]).Error; err != nil {
			return fmt.Errorf("create article %q: %w", articles[i].Title, err)
		}
	}

	return nil
}
