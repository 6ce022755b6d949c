package main

import (
	"log"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"sales-crm.backend/internal/config"
	"sales-crm.backend/internal/infrastructure/models"
	"sales-crm.backend/pkg/crypto"
)

// canonicalStages is the default board layout. Closed Won and Closed Lost
// are identified by kind, not position, so reordering stays safe.
var canonicalStages = []models.PipelineStage{
	{Name: "Lead", SortOrder: 1, Color: "#94a3b8", Kind: "open"},
	{Name: "Qualified", SortOrder: 2, Color: "#60a5fa", Kind: "open"},
	{Name: "Proposal", SortOrder: 3, Color: "#a78bfa", Kind: "open"},
	{Name: "Negotiation", SortOrder: 4, Color: "#fbbf24", Kind: "open"},
	{Name: "Closed Won", SortOrder: 5, Color: "#34d399", Kind: "won"},
	{Name: "Closed Lost", SortOrder: 6, Color: "#f87171", Kind: "lost"},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.Load()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.Database.URL(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.UserTeam{},
		&models.Contact{},
		&models.PipelineStage{},
		&models.Deal{},
		&models.Task{},
		&models.Activity{},
	); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}
	log.Println("✅ Schema migrated")

	if err := seedStages(db); err != nil {
		log.Fatalf("failed to seed stages: %v", err)
	}
	if err := seedAdminUser(db); err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}

	log.Println("🌱 Seed complete")
}

func seedStages(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.PipelineStage{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Pipeline stages already present, skipping")
		return nil
	}

	for i := range canonicalStages {
		if err := db.Create(&canonicalStages[i]).Error; err != nil {
			return err
		}
	}
	log.Printf("Seeded %d pipeline stages", len(canonicalStages))
	return nil
}

func seedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", "admin").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Admin user already present, skipping")
		return nil
	}

	hash, err := crypto.HashPassword("admin123")
	if err != nil {
		return err
	}
	if err := db.Create(&models.User{
		Username: "admin",
		Password: hash,
		Name:     "Admin",
		Email:    "admin@example.com",
	}).Error; err != nil {
		return err
	}
	log.Println("Seeded admin user (username: admin)")
	return nil
}
