// internal/domain/search/service.go
package search

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"gorm.io/gorm"
)

// Service answers suggestion queries for the typeahead dropdown
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new search service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// GetSuggestions returns up to the configured cap of suggestions for a
// query: brand name matches first, then product matches on name, category
// and subcategory. Queries below the minimum length yield an empty list.
func (s *Service) GetSuggestions(ctx context.Context, query string) ([]Suggestion, error) {
	if len(query) < s.config.Catalog.SuggestQueryMinLen {
		return []Suggestion{}, nil
	}

	pattern := "%" + strings.ToLower(query) + "%"

	var brands []catalog.Brand
	err := s.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", pattern).
		Limit(s.config.Catalog.BrandSuggestLimit).
		Find(&brands).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search brands: %w", err)
	}

	productLimit := s.config.Catalog.SuggestionLimit - s.config.Catalog.BrandSuggestLimit
	var products []catalog.Product
	err = s.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(category) LIKE ? OR LOWER(sub_category) LIKE ?",
			pattern, pattern, pattern).
		Limit(productLimit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	suggestions := make([]Suggestion, 0, len(brands)+len(products))
	for _, b := range brands {
		suggestions = append(suggestions, Suggestion{Text: b.Name, Type: "brand"})
	}
	for _, p := range products {
		suggestions = append(suggestions, Suggestion{
			Text: p.Name,
			Type: "product",
			ID:   strconv.FormatUint(uint64(p.ID), 10),
		})
	}

	if len(suggestions) > s.config.Catalog.SuggestionLimit {
		suggestions = suggestions[:s.config.Catalog.SuggestionLimit]
	}
	return suggestions, nil
}
