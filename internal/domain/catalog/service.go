// internal/domain/catalog/service.go
package catalog

import (
	"fmt"
	"strings"

	"github.com/your-org/storefront-backend/internal/config"
	"gorm.io/gorm"
)

// Service handles catalog business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new catalog service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// ProductCreateRequest represents product creation data
type ProductCreateRequest struct {
	Name          string   `json:"name" binding:"required"`
	Category      string   `json:"category" binding:"required,oneof=men boys"`
	SubCategory   string   `json:"subCategory"`
	Brand         string   `json:"brand"`
	Price         float64  `json:"price" binding:"required,gt=0"`
	OriginalPrice float64  `json:"originalPrice"`
	Discount      int      `json:"discount"`
	Images        []string `json:"images"`
	Description   string   `json:"description"`
	Sizes         []string `json:"sizes"`
	InStock       bool     `json:"inStock"`
	IsFeatured    bool     `json:"isFeatured"`
}

// ProductUpdateRequest represents product update data
type ProductUpdateRequest struct {
	Name          *string   `json:"name"`
	Category      *string   `json:"category"`
	SubCategory   *string   `json:"subCategory"`
	Brand         *string   `json:"brand"`
	Price         *float64  `json:"price"`
	OriginalPrice *float64  `json:"originalPrice"`
	Discount      *int      `json:"discount"`
	Images        *[]string `json:"images"`
	Description   *string   `json:"description"`
	Sizes         *[]string `json:"sizes"`
	InStock       *bool     `json:"inStock"`
	IsFeatured    *bool     `json:"isFeatured"`
}

// GetProducts retrieves the full catalog, newest first
func (s *Service) GetProducts() ([]Product, error) {
	var products []Product
	if err := s.db.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}
	return products, nil
}

// GetProduct retrieves a single product by ID
func (s *Service) GetProduct(id uint) (*Product, error) {
	var product Product
	result := s.db.Where("id = ?", id).First(&product)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product not found")
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", result.Error)
	}
	return &product, nil
}

// GetProductsByCategory retrieves products for a storefront category page
func (s *Service) GetProductsByCategory(category string) ([]Product, error) {
	var products []Product
	err := s.db.Where("category = ?", category).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve products for category %s: %w", category, err)
	}
	return products, nil
}

// GetFeaturedProducts retrieves featured products for the home page
func (s *Service) GetFeaturedProducts(limit int) ([]Product, error) {
	if limit <= 0 {
		limit = s.config.Catalog.FeaturedLimit
	}
	var products []Product
	err := s.db.Where("is_featured = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve featured products: %w", err)
	}
	return products, nil
}

// GetSimilarProducts retrieves products sharing a category or subcategory,
// excluding the product itself
func (s *Service) GetSimilarProducts(productID uint) ([]Product, error) {
	product, err := s.GetProduct(productID)
	if err != nil {
		return nil, err
	}

	var similar []Product
	err = s.db.Where("id <> ?", productID).
		Where("category = ? OR sub_category = ?", product.Category, product.SubCategory).
		Limit(s.config.Catalog.SimilarLimit).
		Find(&similar).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve similar products: %w", err)
	}
	return similar, nil
}

// SearchProducts retrieves products matching a free-text query across
// name, brand, subcategory and category
func (s *Service) SearchProducts(query string) ([]Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []Product{}, nil
	}

	pattern := "%" + strings.ToLower(query) + "%"
	var products []Product
	err := s.db.Where(
		"LOWER(name) LIKE ? OR LOWER(brand) LIKE ? OR LOWER(sub_category) LIKE ? OR LOWER(category) LIKE ?",
		pattern, pattern, pattern, pattern,
	).Order("created_at DESC").Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return products, nil
}

// RecordView increments a product's view counter. Fired from the product
// page; failures are the caller's to log, never to surface.
func (s *Service) RecordView(productID uint) error {
	result := s.db.Model(&Product{}).
		Where("id = ?", productID).
		UpdateColumn("views", gorm.Expr("views + 1"))
	if result.Error != nil {
		return fmt.Errorf("failed to record product view: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("product not found")
	}
	return nil
}

// CreateProduct creates a new product
func (s *Service) CreateProduct(req *ProductCreateRequest) (*Product, error) {
	product := Product{
		Name:          req.Name,
		Category:      req.Category,
		SubCategory:   req.SubCategory,
		Brand:         req.Brand,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Discount:      req.Discount,
		Images:        req.Images,
		Description:   req.Description,
		Sizes:         req.Sizes,
		InStock:       req.InStock,
		IsFeatured:    req.IsFeatured,
	}

	// Derive the discount from the markdown when the request omits it
	if product.Discount == 0 {
		product.Discount = product.DiscountPercentage()
	}

	if err := s.db.Create(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &product, nil
}

// UpdateProduct updates an existing product
func (s *Service) UpdateProduct(id uint, req *ProductUpdateRequest) (*Product, error) {
	var product Product
	result := s.db.Where("id = ?", id).First(&product)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product not found")
		}
		return nil, fmt.Errorf("failed to find product: %w", result.Error)
	}

	// Update fields
	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.SubCategory != nil {
		updates["sub_category"] = *req.SubCategory
	}
	if req.Brand != nil {
		updates["brand"] = *req.Brand
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.OriginalPrice != nil {
		updates["original_price"] = *req.OriginalPrice
	}
	if req.Discount != nil {
		updates["discount"] = *req.Discount
	}
	if req.Images != nil {
		product.Images = *req.Images
		updates["images"] = product.Images
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Sizes != nil {
		product.Sizes = *req.Sizes
		updates["sizes"] = product.Sizes
	}
	if req.InStock != nil {
		updates["in_stock"] = *req.InStock
	}
	if req.IsFeatured != nil {
		updates["is_featured"] = *req.IsFeatured
	}

	if err := s.db.Model(&product).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.db.First(&product, product.ID)
	return &product, nil
}

// DeleteProduct soft deletes a product
func (s *Service) DeleteProduct(id uint) error {
	result := s.db.Where("id = ?", id).Delete(&Product{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("product not found")
	}
	return nil
}
