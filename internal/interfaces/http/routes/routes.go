// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-backend/internal/pkg/logger"
)

// SetupRoutes wires every endpoint group under the API base path
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	log := logger.New(cfg)

	authHandler := handlers.NewAuthHandler(db, cfg, log)
	productHandler := handlers.NewProductHandler(db, cfg, log)
	garmentHandler := handlers.NewGarmentHandler(db, cfg, log)
	lookupHandler := handlers.NewLookupHandler(db, cfg, log)
	cartHandler := handlers.NewCartHandler(db, redisClient, cfg, log)
	checkoutHandler := handlers.NewCheckoutHandler(db, redisClient, cfg, log)
	settingsHandler := handlers.NewSettingsHandler(db, cfg, log)
	uploadHandler := handlers.NewUploadHandler(db, cfg, log)
	userAdminHandler := handlers.NewUserAdminHandler(db, cfg, log)

	// Authentication
	auth := rg.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.RefreshToken)

		protected := auth.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.POST("/logout", authHandler.Logout)
			protected.GET("/validate", authHandler.ValidateToken)
			protected.GET("/profile", authHandler.GetProfile)
			protected.PUT("/profile", authHandler.UpdateProfile)
			protected.PUT("/password", authHandler.ChangePassword)
		}
	}

	// Catalog, readable without an account
	catalog := rg.Group("")
	catalog.Use(middleware.OptionalAuthMiddleware(cfg))
	{
		catalog.GET("/products", productHandler.ListProducts)
		catalog.GET("/products/:id", productHandler.GetProduct)

		catalog.GET("/garments", garmentHandler.ListGarments)
		catalog.GET("/garments/:id", garmentHandler.GetGarment)

		catalog.GET("/categories", lookupHandler.ListCategories)
		catalog.GET("/categories/:id", lookupHandler.GetCategory)
		catalog.GET("/colors", lookupHandler.ListColors)
		catalog.GET("/colors/:id", lookupHandler.GetColor)
		catalog.GET("/materials", lookupHandler.ListMaterials)
		catalog.GET("/materials/:id", lookupHandler.GetMaterial)
		catalog.GET("/sizes", lookupHandler.ListSizes)
		catalog.GET("/sizes/:id", lookupHandler.GetSize)
	}

	// Cart, owned by the authenticated user
	cart := rg.Group("/cart")
	cart.Use(middleware.AuthMiddleware(cfg))
	{
		cart.GET("", cartHandler.GetCart)
		cart.DELETE("", cartHandler.ClearCart)
		cart.GET("/total", cartHandler.GetTotal)
		cart.GET("/count", cartHandler.GetItemCount)
		cart.POST("/items", cartHandler.AddItem)
		cart.PUT("/items/:productId", cartHandler.UpdateItemQuantity)
		cart.DELETE("/items/:productId", cartHandler.RemoveItem)
	}

	// Checkout
	checkout := rg.Group("/checkout")
	checkout.Use(middleware.AuthMiddleware(cfg))
	{
		checkout.POST("", checkoutHandler.Checkout)
	}

	// Store settings
	settings := rg.Group("/settings")
	settings.Use(middleware.AuthMiddleware(cfg))
	{
		settings.GET("/whatsapp", settingsHandler.GetContact)
	}

	// Admin back-office
	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg))
	admin.Use(middleware.AdminMiddleware())
	{
		admin.GET("/users", userAdminHandler.ListUsers)
		admin.GET("/users/:id", userAdminHandler.GetUser)
		admin.POST("/users", userAdminHandler.CreateUser)
		admin.PUT("/users/:id", userAdminHandler.UpdateUser)
		admin.DELETE("/users/:id", userAdminHandler.DeleteUser)

		admin.POST("/products", productHandler.CreateProduct)
		admin.PUT("/products/:id", productHandler.UpdateProduct)
		admin.DELETE("/products/:id", productHandler.DeleteProduct)
		admin.GET("/products/export", productHandler.ExportProducts)

		admin.POST("/garments", garmentHandler.CreateGarment)
		admin.PUT("/garments/:id", garmentHandler.UpdateGarment)
		admin.DELETE("/garments/:id", garmentHandler.DeleteGarment)

		admin.POST("/categories", lookupHandler.CreateCategory)
		admin.PUT("/categories/:id", lookupHandler.UpdateCategory)
		admin.DELETE("/categories/:id", lookupHandler.DeleteCategory)

		admin.POST("/colors", lookupHandler.CreateColor)
		admin.PUT("/colors/:id", lookupHandler.UpdateColor)
		admin.DELETE("/colors/:id", lookupHandler.DeleteColor)

		admin.POST("/materials", lookupHandler.CreateMaterial)
		admin.PUT("/materials/:id", lookupHandler.UpdateMaterial)
		admin.DELETE("/materials/:id", lookupHandler.DeleteMaterial)

		admin.POST("/sizes", lookupHandler.CreateSize)
		admin.PUT("/sizes/:id", lookupHandler.UpdateSize)
		admin.DELETE("/sizes/:id", lookupHandler.DeleteSize)

		admin.PUT("/settings/whatsapp", settingsHandler.SaveContact)

		admin.GET("/uploads", uploadHandler.ListFiles)
	}

	// Image uploads; deletion is restricted to the uploader or an admin
	// inside the handler
	uploads := rg.Group("/uploads")
	uploads.Use(middleware.AuthMiddleware(cfg))
	{
		uploads.POST("", uploadHandler.UploadImage)
		uploads.DELETE("/:id", uploadHandler.DeleteImage)
	}
}
