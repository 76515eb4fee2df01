package api

import (
	"log"
	stdhttp "net/http"

	intconfig "tourbooking/internal/config"
	h "tourbooking/internal/http/handlers"
	"tourbooking/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.SetJWTSecret(env.JWTSecret)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		// Storefront catalog
		api.GET("/packages", h.ListPackages)
		api.GET("/packages/:slug", h.GetPackageBySlug)
		api.GET("/categories", h.ListCategories)

		// Live pricing
		api.POST("/quote", h.GetQuote)

		// Cart
		cart := api.Group("/cart")
		cart.GET("", h.GetCart)
		cart.DELETE("", h.ClearCart)
		cart.POST("/items", h.AddCartItem)
		cart.DELETE("/items/:id", h.RemoveCartItem)

		// Bookings
		bookings := api.Group("/bookings")
		bookings.POST("", h.CreateBooking)
		bookings.GET("/:id", h.GetBooking)
		bookings.GET("/:id/voucher", h.GetBookingVoucherPDF)

		// Admin catalog management
		admin := api.Group("/admin", middleware.RequireAuth(h.JWTSecret()), middleware.RequireRoles("admin"))
		admin.POST("/packages", h.CreatePackage)
		admin.PUT("/packages/:id", h.UpdatePackage)
		admin.DELETE("/packages/:id", h.DeletePackage)
		admin.POST("/categories", h.CreateCategory)
		admin.DELETE("/categories/:id", h.DeleteCategory)
	}

	return r
}
