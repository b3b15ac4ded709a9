// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

// SetupCatalogRoutes sets up public product and brand routes
func SetupCatalogRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	productHandler := handlers.NewProductHandler(db, cfg)
	brandHandler := handlers.NewBrandHandler(db, cfg)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/featured", productHandler.GetFeaturedProducts)
		products.GET("/category/:category", productHandler.GetProductsByCategory)
		products.GET("/:id", productHandler.GetProduct)
		products.GET("/:id/similar", productHandler.GetSimilarProducts)
		products.POST("/:id/view", productHandler.RecordView)
	}

	brands := rg.Group("/brands")
	{
		brands.GET("", brandHandler.GetBrands)
		brands.GET("/:id", brandHandler.GetBrand)
		brands.GET("/name/:name", brandHandler.GetBrandByName)
	}
}

// SetupSearchRoutes sets up search and typeahead suggestion routes
func SetupSearchRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	searchHandler := handlers.NewSearchHandler(db, cfg)

	search := rg.Group("/search")
	{
		search.GET("", searchHandler.Search)
		search.GET("/suggestions", searchHandler.GetSuggestions)
	}
}

// SetupCartRoutes sets up session-scoped cart and checkout routes
func SetupCartRoutes(rg *gin.RouterGroup, store *cart.Store, cfg *config.Config) {
	cartHandler := handlers.NewCartHandler(store, cfg)
	checkoutHandler := handlers.NewCheckoutHandler(store, cfg)

	carts := rg.Group("/cart")
	carts.Use(middleware.Session())
	{
		carts.GET("", cartHandler.GetCart)
		carts.POST("/items", cartHandler.AddToCart)
		carts.PUT("/items", cartHandler.UpdateCartItem)
		carts.DELETE("/items", cartHandler.RemoveFromCart)
		carts.DELETE("", cartHandler.ClearCart)
	}

	checkout := rg.Group("/checkout")
	checkout.Use(middleware.Session())
	{
		checkout.POST("/link", checkoutHandler.CreateOrderLink)
	}
}

// SetupAdminRoutes sets up admin authentication and back-office routes
func SetupAdminRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(db, cfg)
	productHandler := handlers.NewProductHandler(db, cfg)
	brandHandler := handlers.NewBrandHandler(db, cfg)
	reportsHandler := handlers.NewReportsHandler(db, cfg)

	admin := rg.Group("/admin")
	{
		// Public admin endpoint
		admin.POST("/login", authHandler.Login)

		// Protected back-office endpoints
		protected := admin.Group("")
		protected.Use(middleware.AdminAuth(cfg))
		{
			protected.GET("/me", authHandler.Me)

			products := protected.Group("/products")
			{
				products.POST("", productHandler.CreateProduct)
				products.PUT("/:id", productHandler.UpdateProduct)
				products.DELETE("/:id", productHandler.DeleteProduct)
			}

			brands := protected.Group("/brands")
			{
				brands.POST("", brandHandler.CreateBrand)
				brands.PUT("/:id", brandHandler.UpdateBrand)
				brands.DELETE("/:id", brandHandler.DeleteBrand)
			}

			reports := protected.Group("/reports")
			{
				reports.GET("/overview", reportsHandler.GetOverview)
				reports.GET("/categories", reportsHandler.GetCategoryReport)
				reports.GET("/categories/:category", reportsHandler.GetSubCategoryReport)
				reports.GET("/top-viewed", reportsHandler.GetTopViewedProducts)
			}
		}
	}
}
