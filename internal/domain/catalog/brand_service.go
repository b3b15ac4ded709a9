// internal/domain/catalog/brand_service.go
package catalog

import (
	"fmt"

	"github.com/your-org/storefront-backend/internal/config"
	"gorm.io/gorm"
)

// BrandService handles brand back-office logic
type BrandService struct {
	db     *gorm.DB
	config *config.Config
}

// NewBrandService creates a new brand service
func NewBrandService(db *gorm.DB, cfg *config.Config) *BrandService {
	return &BrandService{
		db:     db,
		config: cfg,
	}
}

// BrandCreateRequest represents brand creation data
type BrandCreateRequest struct {
	Name           string         `json:"name" binding:"required"`
	SizeGuide      []SizeGuideRow `json:"sizeGuide"`
	SizeGuideImage string         `json:"sizeGuideImage"`
}

// BrandUpdateRequest represents brand update data
type BrandUpdateRequest struct {
	Name           *string         `json:"name"`
	SizeGuide      *[]SizeGuideRow `json:"sizeGuide"`
	SizeGuideImage *string         `json:"sizeGuideImage"`
}

// GetBrands retrieves all brands ordered by name
func (s *BrandService) GetBrands() ([]Brand, error) {
	var brands []Brand
	if err := s.db.Order("name ASC").Find(&brands).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve brands: %w", err)
	}
	return brands, nil
}

// GetBrand retrieves a single brand by ID
func (s *BrandService) GetBrand(id uint) (*Brand, error) {
	var brand Brand
	result := s.db.Where("id = ?", id).First(&brand)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("brand not found")
		}
		return nil, fmt.Errorf("failed to retrieve brand: %w", result.Error)
	}
	return &brand, nil
}

// GetBrandByName retrieves a brand by its display name, used by the
// product page to show the size guide
func (s *BrandService) GetBrandByName(name string) (*Brand, error) {
	var brand Brand
	result := s.db.Where("name = ?", name).First(&brand)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("brand not found")
		}
		return nil, fmt.Errorf("failed to retrieve brand: %w", result.Error)
	}
	return &brand, nil
}

// CreateBrand creates a new brand
func (s *BrandService) CreateBrand(req *BrandCreateRequest) (*Brand, error) {
	var existing Brand
	if result := s.db.Where("name = ?", req.Name).First(&existing); result.Error == nil {
		return nil, fmt.Errorf("brand %s already exists", req.Name)
	}

	brand := Brand{
		Name:           req.Name,
		SizeGuide:      req.SizeGuide,
		SizeGuideImage: req.SizeGuideImage,
	}
	if err := s.db.Create(&brand).Error; err != nil {
		return nil, fmt.Errorf("failed to create brand: %w", err)
	}
	return &brand, nil
}

// UpdateBrand updates an existing brand
func (s *BrandService) UpdateBrand(id uint, req *BrandUpdateRequest) (*Brand, error) {
	brand, err := s.GetBrand(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		brand.Name = *req.Name
	}
	if req.SizeGuide != nil {
		brand.SizeGuide = *req.SizeGuide
	}
	if req.SizeGuideImage != nil {
		brand.SizeGuideImage = *req.SizeGuideImage
	}

	if err := s.db.Save(brand).Error; err != nil {
		return nil, fmt.Errorf("failed to update brand: %w", err)
	}
	return brand, nil
}

// DeleteBrand soft deletes a brand
func (s *BrandService) DeleteBrand(id uint) error {
	result := s.db.Where("id = ?", id).Delete(&Brand{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete brand: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("brand not found")
	}
	return nil
}
