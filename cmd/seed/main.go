package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"devfolio/internal/config"
	"devfolio/internal/db"
	"devfolio/internal/model"
	"devfolio/internal/repository"
)

// sampleItems is starter content for a fresh installation.
var sampleItems = []model.PortfolioItem{
	{
		Title:        "Personal Portfolio",
		Description:  "Single-page portfolio site with an admin dashboard for content management.",
		Image:        "https://placehold.co/800x600/portfolio.png",
		Category:     model.CategoryWeb,
		Technologies: []string{"React", "TypeScript", "Go"},
		Featured:     true,
		Order:        1,
	},
	{
		Title:        "Fitness Tracker",
		Description:  "Cross-platform mobile app for workout logging and progress charts.",
		Image:        "https://placehold.co/800x600/fitness.png",
		Category:     model.CategoryMobile,
		Technologies: []string{"React Native", "SQLite"},
		Order:        2,
	},
	{
		Title:        "Brand Identity Kit",
		Description:  "Logo system, typography, and color guidelines for a coffee roastery.",
		Image:        "https://placehold.co/800x600/brand.png",
		Category:     model.CategoryDesign,
		Technologies: []string{"Figma", "Illustrator"},
		Order:        3,
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.PortfolioItem{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	portfolioRepo := repository.NewPortfolioRepository(gormDB)

	if err := seedAdmin(ctx, userRepo); err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}

	created, err := seedPortfolio(ctx, gormDB, portfolioRepo)
	if err != nil {
		log.Fatalf("Failed to seed portfolio: %v", err)
	}

	log.Printf("Seed completed successfully! New portfolio items created: %d", created)
}

// seedAdmin creates the admin account from environment variables, or promotes
// the existing account with that email.
func seedAdmin(ctx context.Context, repo repository.UserRepository) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	name := os.Getenv("ADMIN_NAME")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}
	if name == "" {
		name = "Admin"
	}

	existing, err := repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if existing != nil {
		existing.Role = model.RoleAdmin
		existing.IsActive = true
		if err := repo.Update(ctx, existing); err != nil {
			return err
		}
		log.Printf("Existing account %s promoted to admin", email)
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return err
	}

	admin := &model.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         model.RoleAdmin,
		IsActive:     true,
	}
	if err := repo.Create(ctx, admin); err != nil {
		return err
	}
	log.Printf("Admin account %s created", email)
	return nil
}

// seedPortfolio inserts sample items, skipping titles that already exist.
func seedPortfolio(ctx context.Context, gormDB *gorm.DB, repo repository.PortfolioRepository) (int, error) {
	created := 0
	for _, item := range sampleItems {
		var count int64
		if err := gormDB.WithContext(ctx).Model(&model.PortfolioItem{}).
			Where("title = ?", item.Title).Count(&count).Error; err != nil {
			return created, err
		}
		if count > 0 {
			continue
		}

		item := item
		item.ID = uuid.New()
		if err := repo.Create(ctx, &item); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
