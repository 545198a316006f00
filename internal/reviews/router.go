package reviews

import (
	"github.com/gin-gonic/gin"

	"cinebook/internal/shared/config"
	"cinebook/internal/shared/middleware"
)

// SetupReviewRoutes registers review endpoints under the movie they
// belong to. Reading is public; writing requires authentication.
func SetupReviewRoutes(router *gin.RouterGroup, cfg *config.Config, controller Controller) {
	reviewRoutes := router.Group("/movies/:id/reviews")
	{
		reviewRoutes.GET("", controller.GetShowReviews) // GET /api/v1/movies/:id/reviews
	}

	authRoutes := router.Group("/movies/:id/reviews")
	authRoutes.Use(middleware.JWTAuthWithConfig(cfg))
	{
		authRoutes.POST("", controller.CreateReview)              // POST /api/v1/movies/:id/reviews
		authRoutes.PUT("/:reviewId", controller.UpdateReview)     // PUT /api/v1/movies/:id/reviews/:reviewId
		authRoutes.DELETE("/:reviewId", controller.DeleteReview)  // DELETE /api/v1/movies/:id/reviews/:reviewId
	}
}
