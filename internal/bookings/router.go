package bookings

import (
	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes registers the payment endpoint and the booking
// ledger endpoints. The group passed in must already require
// authentication.
func SetupBookingRoutes(router *gin.RouterGroup, controller Controller) {
	// Payment lives under the movie so the URL names the show being booked
	router.POST("/movies/:id/seats/payment", controller.BookSeats) // POST /api/v1/movies/:id/seats/payment

	bookingRoutes := router.Group("/bookings")
	{
		bookingRoutes.GET("", controller.GetMyBookings)                    // GET /api/v1/bookings
		bookingRoutes.GET("/:bookingId/qr", controller.GetTicketQR)        // GET /api/v1/bookings/:bookingId/qr
		bookingRoutes.GET("/:bookingId/ticket.pdf", controller.GetTicketPDF) // GET /api/v1/bookings/:bookingId/ticket.pdf
	}
}
