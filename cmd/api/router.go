package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"sellerdesk-backend/internal/shared/middleware"
	"sellerdesk-backend/internal/shared/response"
	"sellerdesk-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	router.NoRoute(func(ctx *gin.Context) {
		response.NotFound(ctx, "Route not found")
	})

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupDepartmentRoutes(v1, c)
		setupSellerRoutes(v1, c)
	}

	return router
}

// ========================================
// DEPARTMENT ROUTES
// ========================================
func setupDepartmentRoutes(v1 *gin.RouterGroup, c *container.Container) {
	departments := v1.Group("/departments")
	{
		departments.GET("", c.DepartmentHandler.ListDepartments)
		departments.GET("/:id", c.DepartmentHandler.GetDepartment)
	}
}

// ========================================
// SELLER ROUTES
// ========================================
func setupSellerRoutes(v1 *gin.RouterGroup, c *container.Container) {
	sellers := v1.Group("/sellers")
	{
		sellers.GET("", c.SellerHandler.ListSellers)
		sellers.POST("", c.SellerHandler.CreateSeller)
		sellers.GET("/:id", c.SellerHandler.GetSeller)
		sellers.PUT("/:id", c.SellerHandler.UpdateSeller)
		sellers.DELETE("/:id", c.SellerHandler.DeleteSeller)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := c.HealthCheck(ctx.Request.Context())
		for _, v := range status {
			if strings.HasPrefix(v, "unhealthy") {
				response.ErrorWithDetails(ctx, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Dependency check failed", status)
				return
			}
		}
		status["version"] = c.Config.App.Version
		response.Success(ctx, http.StatusOK, status)
	}
}
