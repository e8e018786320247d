package router

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var Router *gin.Engine

func InitEngine() {
	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	Router = gin.Default()

	Router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173", "https://tiendia.app", "https://www.tiendia.app"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "X-Cache"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}

func InitializeRoutes() {
	api := Router.Group("/api")
	{
		api.GET("/health", HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", RegisterStore)
			auth.POST("/login", Login)
		}

		// Dashboard routes for the authenticated store owner.
		admin := api.Group("/admin")
		admin.Use(AuthMiddleware())
		{
			admin.GET("/me", GetMyStore)
			admin.PUT("/me", UpdateMyStore)
			admin.GET("/stats", GetMyCatalogStats)

			products := admin.Group("/products")
			{
				products.GET("", ListMyProducts)
				products.POST("", CreateProduct)
				products.PUT("/:id", EditProduct)
				products.DELETE("/:id", DeleteProduct)
				products.POST("/:id/images/generate", GenerateProductImage)
				products.POST("/:id/description/generate", GenerateProductDescription)
			}
		}

		// Public storefront: catalog page, session cart, WhatsApp checkout.
		stores := api.Group("/stores")
		{
			stores.GET("/:username", GetStorefront)

			sessionCart := stores.Group("/:username/cart/:sessionId")
			sessionCart.Use(SessionMiddleware())
			{
				sessionCart.GET("", GetSessionCart)
				sessionCart.DELETE("", ClearSessionCart)
				sessionCart.POST("/items", AddCartItem)
				sessionCart.PUT("/items", UpdateCartItem)
				sessionCart.DELETE("/items", RemoveCartItem)
				sessionCart.GET("/checkout", CheckoutLink)
			}
		}
	}
}
