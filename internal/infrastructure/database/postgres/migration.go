// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/pkg/auth"
	"gorm.io/gorm"
)

// Migration handles database migrations
type Migration struct {
	db        *gorm.DB
	passwords *auth.PasswordManager
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB, cfg *config.Config) *Migration {
	return &Migration{
		db:        db,
		passwords: auth.NewPasswordManager(cfg),
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	models := []interface{}{
		&catalog.Brand{},
		&catalog.Product{},
		&catalog.AdminUser{},
	}

	for _, model := range models {
		log.Printf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	log.Println("🔄 Creating additional database indexes...")

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_products_category_created ON products(category, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_products_sub_category ON products(sub_category)",
		"CREATE INDEX IF NOT EXISTS idx_products_brand ON products(brand)",
		"CREATE INDEX IF NOT EXISTS idx_products_price ON products(price)",
		"CREATE INDEX IF NOT EXISTS idx_products_featured ON products(is_featured) WHERE is_featured = true",
		"CREATE INDEX IF NOT EXISTS idx_products_views ON products(views DESC)",
		"CREATE INDEX IF NOT EXISTS idx_brands_name ON brands(name)",
	}

	for _, index := range indexes {
		if err := m.db.Exec(index).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	log.Println("✅ Database indexes created successfully")
	return nil
}

// SeedInitialData seeds development data
func (m *Migration) SeedInitialData() error {
	log.Println("🔄 Seeding initial data...")

	if err := m.seedAdminUser(); err != nil {
		return err
	}
	if err := m.seedBrands(); err != nil {
		return err
	}
	if err := m.seedProducts(); err != nil {
		return err
	}

	log.Println("✅ Initial data seeded successfully")
	return nil
}

func (m *Migration) seedAdminUser() error {
	var count int64
	m.db.Model(&catalog.AdminUser{}).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := m.passwords.HashPassword("admin12345")
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	admin := catalog.AdminUser{
		Email:        "admin@luvis.local",
		PasswordHash: hash,
	}
	if err := m.db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	return nil
}

func (m *Migration) seedBrands() error {
	var count int64
	m.db.Model(&catalog.Brand{}).Count(&count)
	if count > 0 {
		return nil
	}

	brands := []catalog.Brand{
		{
			Name: "Luvis",
			SizeGuide: []catalog.SizeGuideRow{
				{Size: "M", Chest: "38", Length: "27", Shoulder: "17", Sleeve: "8"},
				{Size: "L", Chest: "40", Length: "28", Shoulder: "18", Sleeve: "8.5"},
				{Size: "XL", Chest: "42", Length: "29", Shoulder: "19", Sleeve: "9"},
			},
		},
		{Name: "Nike"},
		{Name: "Adidas"},
	}
	if err := m.db.Create(&brands).Error; err != nil {
		return fmt.Errorf("failed to seed brands: %w", err)
	}
	return nil
}

func (m *Migration) seedProducts() error {
	var count int64
	m.db.Model(&catalog.Product{}).Count(&count)
	if count > 0 {
		return nil
	}

	products := []catalog.Product{
		{
			Name:          "Classic Crew Tee",
			Category:      "men",
			SubCategory:   "T-Shirts",
			Brand:         "Luvis",
			Price:         499,
			OriginalPrice: 799,
			Discount:      37,
			Images:        []string{"/uploads/classic-crew-tee.jpg"},
			Description:   "Everyday crew neck t-shirt in combed cotton.",
			Sizes:         []string{"M", "L", "XL"},
			InStock:       true,
			IsFeatured:    true,
		},
		{
			Name:          "Printed Polo",
			Category:      "men",
			SubCategory:   "Polos",
			Brand:         "Nike",
			Price:         1299,
			OriginalPrice: 1599,
			Discount:      18,
			Images:        []string{"/uploads/printed-polo.jpg"},
			Description:   "Slim fit printed polo.",
			Sizes:         []string{"S", "M", "L"},
			InStock:       true,
		},
		{
			Name:        "Kids Graphic Tee",
			Category:    "boys",
			SubCategory: "T-Shirts",
			Brand:       "Adidas",
			Price:       399,
			Images:      []string{"/uploads/kids-graphic-tee.jpg"},
			Description: "Graphic print tee for boys.",
			Sizes:       []string{"6-7Y", "8-9Y", "10-11Y"},
			InStock:     true,
		},
	}
	if err := m.db.Create(&products).Error; err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}
	return nil
}
