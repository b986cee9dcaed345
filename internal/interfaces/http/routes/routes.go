// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/colorsense/colorsense-backend/internal/config"
	"github.com/colorsense/colorsense-backend/internal/domain/cart"
	"github.com/colorsense/colorsense-backend/internal/domain/product"
	"github.com/colorsense/colorsense-backend/internal/domain/wishlist"
	"github.com/colorsense/colorsense-backend/internal/infrastructure/cache"
	"github.com/colorsense/colorsense-backend/internal/infrastructure/database/postgres"
	"github.com/colorsense/colorsense-backend/internal/interfaces/http/handlers"
	"github.com/colorsense/colorsense-backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// SetupRoutes wires repositories, services and handlers and registers all
// API routes. Services receive their persistence and catalog ports
// explicitly; nothing reaches for a package-level handle.
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	productService := product.NewService(db, cfg)

	var cartCache cart.Cache
	if cfg.Cache.Enabled {
		cartCache = cache.NewCartCache(redisClient, cfg.Cache.TTL)
	}

	cartService := cart.NewService(postgres.NewCartRepository(db), productService, cartCache, cfg)
	wishlistService := wishlist.NewService(postgres.NewWishlistRepository(db), productService, cartService)

	productHandler := handlers.NewProductHandler(productService)
	cartHandler := handlers.NewCartHandler(cartService)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)

	// Product catalog routes
	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/:id", productHandler.GetProduct)
		products.GET("/slug/:slug", productHandler.GetProductBySlug)

		products.POST("", productHandler.CreateProduct)
		products.PUT("/:id", productHandler.UpdateProduct)
		products.DELETE("/:id", productHandler.DeleteProduct)
	}

	// Cart routes - owner scoped
	cartRoutes := rg.Group("/cart")
	cartRoutes.Use(middleware.RequireOwner())
	{
		cartRoutes.GET("", cartHandler.GetCart)
		cartRoutes.GET("/count", cartHandler.GetCartCount)
		cartRoutes.POST("/items", cartHandler.AddItem)
		cartRoutes.PUT("/items/:id", cartHandler.UpdateItem)
		cartRoutes.DELETE("/items/:id", cartHandler.RemoveItem)
		cartRoutes.DELETE("", cartHandler.ClearCart)
	}

	// Wishlist routes - owner scoped
	wishlistRoutes := rg.Group("/wishlist")
	wishlistRoutes.Use(middleware.RequireOwner())
	{
		wishlistRoutes.GET("", wishlistHandler.GetWishlist)
		wishlistRoutes.POST("/items", wishlistHandler.AddItem)
		wishlistRoutes.DELETE("/items/:id", wishlistHandler.RemoveItem)
		wishlistRoutes.GET("/products/:productId", wishlistHandler.CheckProduct)
		wishlistRoutes.DELETE("/products/:productId", wishlistHandler.RemoveByProduct)
		wishlistRoutes.POST("/products/:productId/move-to-cart", wishlistHandler.MoveToCart)
		wishlistRoutes.DELETE("", wishlistHandler.ClearWishlist)
	}
}
