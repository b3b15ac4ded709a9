// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	store  *cart.Store
	config *config.Config
}

// NewCartHandler creates a new cart handler
func NewCartHandler(store *cart.Store, cfg *config.Config) *CartHandler {
	return &CartHandler{
		store:  store,
		config: cfg,
	}
}

// AddToCartRequest represents an add-to-cart payload
type AddToCartRequest struct {
	ProductID string  `json:"productId" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Image     string  `json:"image"`
	Price     float64 `json:"price" binding:"required,min=0"`
	Size      string  `json:"size" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
}

// UpdateCartItemRequest represents a quantity update payload
type UpdateCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Size      string `json:"size" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

// RemoveCartItemRequest identifies a line to remove
type RemoveCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Size      string `json:"size" binding:"required"`
}

func cartResponse(lines []cart.LineItem) gin.H {
	return gin.H{
		"data":   lines,
		"totals": cart.ComputeTotals(lines),
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	lines := h.store.Items(c.Request.Context(), sessionID)
	c.JSON(http.StatusOK, cartResponse(lines))
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	sessionID := middleware.GetSessionID(c)
	lines := h.store.Add(c.Request.Context(), sessionID, cart.LineItem{
		ProductID: req.ProductID,
		Name:      req.Name,
		Image:     req.Image,
		Price:     req.Price,
		Size:      req.Size,
		Quantity:  req.Quantity,
	})

	c.JSON(http.StatusOK, cartResponse(lines))
}

// UpdateCartItem handles PUT /cart/items
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	// Quantity floor is enforced at the edge; use DELETE to drop a line
	if req.Quantity < 1 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Quantity must be at least 1",
		})
		return
	}

	sessionID := middleware.GetSessionID(c)
	lines := h.store.UpdateQuantity(c.Request.Context(), sessionID, req.ProductID, req.Size, req.Quantity)

	c.JSON(http.StatusOK, cartResponse(lines))
}

// RemoveFromCart handles DELETE /cart/items
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	var req RemoveCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	sessionID := middleware.GetSessionID(c)
	lines := h.store.Remove(c.Request.Context(), sessionID, req.ProductID, req.Size)

	c.JSON(http.StatusOK, cartResponse(lines))
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	h.store.Clear(c.Request.Context(), sessionID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared",
		"data":    []cart.LineItem{},
		"totals":  cart.Totals{},
	})
}
