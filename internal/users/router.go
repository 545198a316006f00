package users

import (
	"github.com/gin-gonic/gin"
)

// SetupUserRoutes registers the profile and ticket endpoints.
// The group passed in must already require authentication.
func SetupUserRoutes(router *gin.RouterGroup, controller Controller) {
	profile := router.Group("/users")
	{
		profile.GET("/profile", controller.GetProfile)   // GET /api/v1/users/profile
		profile.PUT("/profile", controller.UpdateProfile) // PUT /api/v1/users/profile
		profile.GET("/tickets", controller.GetTickets)   // GET /api/v1/users/tickets
	}
}
