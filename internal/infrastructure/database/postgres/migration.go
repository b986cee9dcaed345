// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"github.com/colorsense/colorsense-backend/internal/domain/product"
	"gorm.io/gorm"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	// Define all models that need migration in dependency order
	models := []interface{}{
		// Product catalog - base tables
		&product.Category{},
		&product.Product{},

		// Shopping aggregates - one row per owner
		&cartRecord{},
		&wishlistRecord{},
	}

	// Run auto-migration for each model
	for _, model := range models {
		log.Printf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed")
	return nil
}

// CreateIndexes creates additional indexes not covered by the model tags
func (m *Migration) CreateIndexes() error {
	log.Println("🔄 Creating database indexes...")

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_products_category_active ON products (category_id, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_products_price ON products (price)",
		"CREATE INDEX IF NOT EXISTS idx_carts_last_modified ON carts (last_modified_at)",
		"CREATE INDEX IF NOT EXISTS idx_wishlists_last_modified ON wishlists (last_modified_at)",
	}

	for _, idx := range indexes {
		if err := m.db.Exec(idx).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	log.Println("✅ Database indexes created")
	return nil
}

// SeedInitialData inserts a starter catalog for development environments
func (m *Migration) SeedInitialData() error {
	var count int64
	if err := m.db.Model(&product.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return nil // Already seeded
	}

	log.Println("🌱 Seeding initial catalog data...")

	categories := []product.Category{
		{Name: "Tops", Slug: "tops", Description: "Shirts, blouses and tees", SortOrder: 1, IsActive: true},
		{Name: "Bottoms", Slug: "bottoms", Description: "Trousers, jeans and skirts", SortOrder: 2, IsActive: true},
		{Name: "Accessories", Slug: "accessories", Description: "Bags, belts and scarves", SortOrder: 3, IsActive: true},
	}
	if err := m.db.Create(&categories).Error; err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	products := []product.Product{
		{
			SKU:         "CS-TOP-001",
			Name:        "Classic Crew Tee",
			Slug:        "classic-crew-tee",
			Description: "Everyday cotton tee in seasonal colors",
			Price:       1999,
			CategoryID:  categories[0].ID,
			Sizes:       "S,M,L,XL",
			Colors:      "Black,White,Red",
			IsActive:    true,
			TrackStock:  true,
			Stock:       120,
			Tags:        "basics,cotton",
		},
		{
			SKU:         "CS-BTM-001",
			Name:        "Slim Fit Jeans",
			Slug:        "slim-fit-jeans",
			Description: "Stretch denim with a tapered leg",
			Price:       5999,
			CategoryID:  categories[1].ID,
			Sizes:       "28,30,32,34",
			Colors:      "Indigo,Black",
			IsActive:    true,
			TrackStock:  true,
			Stock:       60,
			Tags:        "denim",
		},
		{
			SKU:         "CS-ACC-001",
			Name:        "Woven Leather Belt",
			Slug:        "woven-leather-belt",
			Description: "One-size woven belt",
			Price:       2499,
			CategoryID:  categories[2].ID,
			IsActive:    true,
			TrackStock:  true,
			Stock:       40,
			Tags:        "leather",
		},
	}
	if err := m.db.Create(&products).Error; err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	log.Println("✅ Initial catalog data seeded")
	return nil
}
