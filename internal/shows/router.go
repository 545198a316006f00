package shows

import (
	"github.com/gin-gonic/gin"

	"cinebook/internal/seats"
	"cinebook/internal/shared/config"
	"cinebook/internal/shared/middleware"
)

// SetupShowRoutes registers public browsing routes and admin-only
// show/seat management routes.
func SetupShowRoutes(router *gin.RouterGroup, cfg *config.Config, controller Controller, seatController seats.Controller) {
	RegisterGenreValidation()

	// Public routes - anyone can browse shows and seat maps
	publicShows := router.Group("/movies")
	{
		publicShows.GET("", controller.GetAllShows)            // GET /api/v1/movies
		publicShows.GET("/:id", controller.GetShow)            // GET /api/v1/movies/:id
		publicShows.GET("/:id/seats", seatController.ListPublic) // GET /api/v1/movies/:id/seats
	}

	// Admin routes - show and seat-map management
	adminShows := router.Group("/admin/movies")
	adminShows.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireAdmin())
	{
		adminShows.POST("", controller.CreateShow)             // POST /api/v1/admin/movies
		adminShows.PUT("/:id", controller.UpdateShow)          // PUT /api/v1/admin/movies/:id
		adminShows.DELETE("/:id", controller.DeleteShow)       // DELETE /api/v1/admin/movies/:id
		adminShows.GET("/:id/seats", seatController.ListAdmin) // GET /api/v1/admin/movies/:id/seats
		adminShows.POST("/:id/seats", seatController.Replace)  // POST /api/v1/admin/movies/:id/seats
	}
}
