// internal/domain/catalog/entity.go
package catalog

import (
	"time"

	"gorm.io/gorm"
)

// Product represents a catalog product
type Product struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Name          string         `gorm:"not null;size:255;index" json:"name"`
	Category      string         `gorm:"not null;size:50;index" json:"category"` // men, boys
	SubCategory   string         `gorm:"size:100;index" json:"subCategory"`
	Brand         string         `gorm:"size:100;index" json:"brand"`
	Price         float64        `gorm:"not null" json:"price"` // Rupees, whole units
	OriginalPrice float64        `json:"originalPrice"`
	Discount      int            `json:"discount"` // Percentage off original price
	Images        []string       `gorm:"serializer:json" json:"images"`
	Description   string         `gorm:"type:text" json:"description"`
	Sizes         []string       `gorm:"serializer:json" json:"sizes"`
	InStock       bool           `gorm:"default:true" json:"inStock"`
	IsFeatured    bool           `gorm:"default:false" json:"isFeatured"`
	Views         int64          `gorm:"default:0" json:"views"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// Brand represents a storefront brand with its size guide
type Brand struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Name           string         `gorm:"uniqueIndex;not null;size:255" json:"name"`
	SizeGuide      []SizeGuideRow `gorm:"serializer:json" json:"sizeGuide"`
	SizeGuideImage string         `gorm:"size:500" json:"sizeGuideImage,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// SizeGuideRow is one row of a brand's measurement table
type SizeGuideRow struct {
	Size     string `json:"size"`
	Chest    string `json:"chest"`
	Length   string `json:"length"`
	Shoulder string `json:"shoulder"`
	Sleeve   string `json:"sleeve"`
}

// AdminUser represents a back-office operator
type AdminUser struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Email        string         `gorm:"uniqueIndex;not null;size:255" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides
func (Product) TableName() string   { return "products" }
func (Brand) TableName() string     { return "brands" }
func (AdminUser) TableName() string { return "admin_users" }

// DiscountPercentage derives the percent off the original price. Zero when
// there is no original price or no markdown.
func (p *Product) DiscountPercentage() int {
	if p.OriginalPrice > 0 && p.Price < p.OriginalPrice {
		return int((p.OriginalPrice - p.Price) * 100 / p.OriginalPrice)
	}
	return 0
}
