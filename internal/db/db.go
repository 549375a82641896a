package db

import (
	"fmt"

	"bloghub/internal/config"
	"bloghub/internal/logging"
	"bloghub/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Init connects to postgres and prepares the schema.
func Init(cfg *config.Config) error {
	g, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	logging.Log.Info("database connection established")
	return Setup(g)
}

// Setup migrates the schema on an already-open connection and installs it
// as the package-level handle. Tests call this with an in-memory database.
func Setup(g *gorm.DB) error {
	// The join table uses an explicit model so the post-creation
	// transaction can insert link rows directly.
	if err := g.SetupJoinTable(&models.BlogPost{}, "Categories", &models.PostCategory{}); err != nil {
		return fmt.Errorf("setup join table: %w", err)
	}

	if err := g.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.BlogPost{},
	); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	DB = g
	seedCategories()
	return nil
}

func seedCategories() {
	var count int64
	DB.Model(&models.Category{}).Count(&count)
	if count > 0 {
		return
	}

	categories := []models.Category{
		{Name: "General"},
		{Name: "Tech"},
	}
	for _, category := range categories {
		if err := DB.Create(&category).Error; err != nil {
			logging.Log.WithError(err).Warnf("failed to seed category %s", category.Name)
		}
	}
	logging.Log.Info("initial categories created")
}
