// internal/interfaces/http/handlers/search.go
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/search"
	"gorm.io/gorm"
)

// SearchHandler handles search and suggestion endpoints
type SearchHandler struct {
	catalogService *catalog.Service
	searchService  *search.Service
	config         *config.Config
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(db *gorm.DB, cfg *config.Config) *SearchHandler {
	return &SearchHandler{
		catalogService: catalog.NewService(db, cfg),
		searchService:  search.NewService(db, cfg),
		config:         cfg,
	}
}

// Search handles GET /search?q=
func (h *SearchHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusOK, gin.H{
			"data":  []catalog.Product{},
			"total": 0,
			"query": query,
		})
		return
	}

	products, err := h.catalogService.SearchProducts(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to search products",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  products,
		"total": len(products),
		"query": query,
	})
}

// GetSuggestions handles GET /search/suggestions?q=
func (h *SearchHandler) GetSuggestions(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))

	suggestions, err := h.searchService.GetSuggestions(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve suggestions",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  suggestions,
		"query": query,
	})
}
