// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/checkout"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// CheckoutHandler handles checkout endpoints
type CheckoutHandler struct {
	checkoutService *checkout.Service
	store           *cart.Store
	config          *config.Config
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(store *cart.Store, cfg *config.Config) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkout.NewService(cfg),
		store:           store,
		config:          cfg,
	}
}

// CreateOrderLink handles POST /checkout/link. It builds the messaging deep
// link from the session cart. The cart is left intact so the customer can
// retry if the message never goes out.
func (h *CheckoutHandler) CreateOrderLink(c *gin.Context) {
	var req checkout.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	sessionID := middleware.GetSessionID(c)
	lines := h.store.Items(c.Request.Context(), sessionID)
	if len(lines) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Cart is empty",
		})
		return
	}

	link := h.checkoutService.BuildOrderLink(&req, lines)

	c.JSON(http.StatusOK, gin.H{
		"message": "Order link created successfully",
		"data":    link,
	})
}
