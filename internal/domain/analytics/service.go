// internal/domain/analytics/service.go
package analytics

import (
	"fmt"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"gorm.io/gorm"
)

// Service handles back-office reporting over the catalog
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new reporting service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// CatalogOverview represents the dashboard summary
type CatalogOverview struct {
	TotalProducts    int64 `json:"total_products"`
	InStockProducts  int64 `json:"in_stock_products"`
	FeaturedProducts int64 `json:"featured_products"`
	TotalBrands      int64 `json:"total_brands"`
	TotalViews       int64 `json:"total_views"`
}

// GroupReport represents view/product counts for one grouping value
type GroupReport struct {
	Name         string `json:"name"`
	ProductCount int64  `json:"product_count"`
	TotalViews   int64  `json:"total_views"`
}

// ProductViews represents a single product's view count
type ProductViews struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Views int64  `json:"views"`
}

// GetOverview returns the dashboard summary counts
func (s *Service) GetOverview() (*CatalogOverview, error) {
	var overview CatalogOverview

	if err := s.db.Model(&catalog.Product{}).Count(&overview.TotalProducts).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	if err := s.db.Model(&catalog.Product{}).Where("in_stock = ?", true).Count(&overview.InStockProducts).Error; err != nil {
		return nil, fmt.Errorf("failed to count in-stock products: %w", err)
	}
	if err := s.db.Model(&catalog.Product{}).Where("is_featured = ?", true).Count(&overview.FeaturedProducts).Error; err != nil {
		return nil, fmt.Errorf("failed to count featured products: %w", err)
	}
	if err := s.db.Model(&catalog.Brand{}).Count(&overview.TotalBrands).Error; err != nil {
		return nil, fmt.Errorf("failed to count brands: %w", err)
	}
	var totalViews *int64
	err := s.db.Model(&catalog.Product{}).
		Select("SUM(views)").
		Scan(&totalViews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum views: %w", err)
	}
	if totalViews != nil {
		overview.TotalViews = *totalViews
	}

	return &overview, nil
}

// GetCategoryReport returns product and view counts grouped by category
func (s *Service) GetCategoryReport() ([]GroupReport, error) {
	return s.groupBy("category", nil)
}

// GetSubCategoryReport returns product and view counts grouped by
// subcategory within a category
func (s *Service) GetSubCategoryReport(category string) ([]GroupReport, error) {
	return s.groupBy("sub_category", func(q *gorm.DB) *gorm.DB {
		return q.Where("category = ?", category)
	})
}

// GetTopViewedProducts returns the most viewed products, optionally scoped
// to a category and subcategory
func (s *Service) GetTopViewedProducts(category, subCategory string, limit int) ([]ProductViews, error) {
	if limit <= 0 {
		limit = 10
	}

	query := s.db.Model(&catalog.Product{}).
		Select("id, name, brand, views")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if subCategory != "" {
		query = query.Where("sub_category = ?", subCategory)
	}

	var products []ProductViews
	err := query.Order("views DESC").Limit(limit).Scan(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve top viewed products: %w", err)
	}
	return products, nil
}

func (s *Service) groupBy(column string, scope func(*gorm.DB) *gorm.DB) ([]GroupReport, error) {
	query := s.db.Model(&catalog.Product{}).
		Select(fmt.Sprintf("%s AS name, COUNT(*) AS product_count, SUM(views) AS total_views", column)).
		Group(column).
		Order("product_count DESC")
	if scope != nil {
		query = scope(query)
	}

	var reports []GroupReport
	if err := query.Scan(&reports).Error; err != nil {
		return nil, fmt.Errorf("failed to build %s report: %w", column, err)
	}
	return reports, nil
}
