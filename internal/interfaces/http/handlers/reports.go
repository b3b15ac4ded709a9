// internal/interfaces/http/handlers/reports.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/analytics"
	"gorm.io/gorm"
)

// ReportsHandler handles admin reporting endpoints
type ReportsHandler struct {
	analyticsService *analytics.Service
	config           *config.Config
}

// NewReportsHandler creates a new reports handler
func NewReportsHandler(db *gorm.DB, cfg *config.Config) *ReportsHandler {
	return &ReportsHandler{
		analyticsService: analytics.NewService(db, cfg),
		config:           cfg,
	}
}

// GetOverview handles GET /admin/reports/overview
func (h *ReportsHandler) GetOverview(c *gin.Context) {
	overview, err := h.analyticsService.GetOverview()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to build catalog overview",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": overview,
	})
}

// GetCategoryReport handles GET /admin/reports/categories
func (h *ReportsHandler) GetCategoryReport(c *gin.Context) {
	reports, err := h.analyticsService.GetCategoryReport()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to build category report",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": reports,
	})
}

// GetSubCategoryReport handles GET /admin/reports/categories/:category
func (h *ReportsHandler) GetSubCategoryReport(c *gin.Context) {
	category := c.Param("category")

	reports, err := h.analyticsService.GetSubCategoryReport(category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to build subcategory report",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":     reports,
		"category": category,
	})
}

// GetTopViewedProducts handles GET /admin/reports/top-viewed
func (h *ReportsHandler) GetTopViewedProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	products, err := h.analyticsService.GetTopViewedProducts(
		c.Query("category"), c.Query("subCategory"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve top viewed products",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": products,
	})
}
