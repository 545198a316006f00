package auth

import (
	"github.com/gin-gonic/gin"

	"cinebook/internal/shared/config"
	"cinebook/internal/shared/middleware"
)

// SetupAuthRoutes registers public auth endpoints and the
// authenticated password-change endpoint.
func SetupAuthRoutes(router *gin.RouterGroup, cfg *config.Config, controller *Controller) {
	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/register", controller.Register)    // POST /api/v1/auth/register
		authRoutes.POST("/login", controller.Login)          // POST /api/v1/auth/login
		authRoutes.POST("/refresh", controller.RefreshToken) // POST /api/v1/auth/refresh

		protected := authRoutes.Group("")
		protected.Use(middleware.JWTAuthWithConfig(cfg))
		{
			protected.PUT("/change-password", controller.ChangePassword) // PUT /api/v1/auth/change-password
		}
	}
}
