package routes

import (
	"qr-menu-api/handlers"
	"qr-menu-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Pricing info (great for docs/Postman)
		public.GET("/billing/plans", handlers.GetPlans)
	}

	// Customer-facing menu page target of the QR code (no auth)
	r.GET("/menu/:menuId", handlers.GetPublicMenu)

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
		auth.PUT("/profile/email", handlers.UpdateEmail)

		// Restaurant profile
		auth.POST("/restaurant", handlers.CreateRestaurant)
		auth.GET("/restaurant", handlers.GetMyRestaurant)
		auth.PUT("/restaurant", handlers.UpdateRestaurant)
		auth.POST("/restaurant/logo", handlers.UploadLogo)

		// Menus
		auth.POST("/menus", handlers.CreateMenu)
		auth.GET("/menus", handlers.ListMenus)
		auth.GET("/menus/:menuId", handlers.GetMenu)
		auth.PUT("/menus/:menuId", handlers.UpdateMenu)
		auth.DELETE("/menus/:menuId", handlers.DeleteMenu)

		// Categories
		auth.POST("/menus/:menuId/categories", handlers.CreateCategory)
		auth.GET("/menus/:menuId/categories", handlers.ListCategories)
		auth.PUT("/menus/:menuId/categories/:categoryId", handlers.UpdateCategory)
		auth.DELETE("/menus/:menuId/categories/:categoryId", handlers.DeleteCategory)

		// Items
		auth.POST("/menus/:menuId/items", handlers.CreateItem)
		auth.GET("/menus/:menuId/items", handlers.ListItems)
		auth.PUT("/menus/:menuId/items/:itemId", handlers.UpdateItem)
		auth.PATCH("/menus/:menuId/items/:itemId", handlers.PatchItem)
		auth.DELETE("/menus/:menuId/items/:itemId", handlers.DeleteItem)

		// Billing
		auth.POST("/billing/verify", handlers.VerifyPayment)
		auth.GET("/billing/history", handlers.GetPaymentHistory)
	}
}
