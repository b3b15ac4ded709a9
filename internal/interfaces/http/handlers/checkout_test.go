package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

func checkoutTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cart.StorageNamespace = "luvis-cart-storage"
	cfg.Checkout.StoreName = "Luvis"
	cfg.Checkout.WhatsAppNumber = "91812585107"
	cfg.Checkout.WhatsAppBaseURL = "https://wa.me"
	return cfg
}

func checkoutTestRouter(store *cart.Store, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/checkout/link", middleware.Session(), NewCheckoutHandler(store, cfg).CreateOrderLink)
	return r
}

func postOrderLink(t *testing.T, r *gin.Engine, sessionID string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(map[string]string{
		"customer_name": "Asha",
		"phone_number":  "9876543210",
		"address":       "12 MG Road, Kochi",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/checkout/link", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", sessionID)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateOrderLink_CartSurvivesLinkCreation(t *testing.T) {
	cfg := checkoutTestConfig()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	store := cart.NewStore(cart.NewMemoryStorage(), cfg, logger)
	ctx := context.Background()

	store.Add(ctx, "s1", cart.LineItem{
		ProductID: "p1", Name: "Tee", Price: 500, Size: "L", Quantity: 2,
	})

	w := postOrderLink(t, checkoutTestRouter(store, cfg), "s1")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			URL   string  `json:"url"`
			Total float64 `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, strings.HasPrefix(resp.Data.URL, "https://wa.me/91812585107?text="))
	require.Equal(t, float64(1000), resp.Data.Total)

	// The customer may never send the message; the cart stays so they can retry
	lines := store.Items(ctx, "s1")
	require.Len(t, lines, 1)
	require.Equal(t, 2, lines[0].Quantity)
}

func TestCreateOrderLink_EmptyCartRejected(t *testing.T) {
	cfg := checkoutTestConfig()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	store := cart.NewStore(cart.NewMemoryStorage(), cfg, logger)

	w := postOrderLink(t, checkoutTestRouter(store, cfg), "empty-session")
	require.Equal(t, http.StatusBadRequest, w.Code)
}
