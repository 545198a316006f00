package bookings

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cinebook/internal/seats"
	"cinebook/internal/shared/utils/response"
	"cinebook/internal/users"
)

type Controller interface {
	BookSeats(c *gin.Context)
	GetMyBookings(c *gin.Context)
	GetTicketQR(c *gin.Context)
	GetTicketPDF(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func actorID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw.(string))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func actorIsAdmin(c *gin.Context) bool {
	role, exists := c.Get("user_role")
	return exists && role == string(users.RoleAdmin)
}

func (ctrl *controller) BookSeats(c *gin.Context) {
	showID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid show ID", nil, nil)
		return
	}

	userID, ok := actorID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req BookSeatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	confirmation, err := ctrl.service.BookSeats(c.Request.Context(), showID, userID, req.SeatNumbers)
	if err != nil {
		var unavailable *seats.UnavailableError
		switch {
		case errors.As(err, &unavailable):
			response.RespondJSON(c, "error", http.StatusConflict, "Some seats are unavailable", nil, gin.H{
				"unavailable_seats": unavailable.SeatNumbers,
			})
		case errors.Is(err, ErrShowNotFound):
			response.RespondJSON(c, "error", http.StatusNotFound, "Show not found", nil, nil)
		case errors.Is(err, ErrUserNotFound):
			response.RespondJSON(c, "error", http.StatusNotFound, "User not found", nil, nil)
		case errors.Is(err, ErrNoSeatsChosen), errors.Is(err, ErrTooManySeats):
			response.RespondJSON(c, "error", http.StatusBadRequest, err.Error(), nil, nil)
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to book seats", nil, err.Error())
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Seats booked successfully", confirmation, nil)
}

func (ctrl *controller) GetMyBookings(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	bookings, err := ctrl.service.GetUserBookings(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "User not found", nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to get bookings", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Bookings retrieved", bookings, nil)
}

func (ctrl *controller) GetTicketQR(c *gin.Context) {
	png, _, ok := ctrl.ticketArtifact(c, ctrl.service.TicketQR)
	if !ok {
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func (ctrl *controller) GetTicketPDF(c *gin.Context) {
	pdf, bookingID, ok := ctrl.ticketArtifact(c, ctrl.service.TicketPDF)
	if !ok {
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=ticket-%s.pdf", bookingID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (ctrl *controller) ticketArtifact(c *gin.Context, render func(ctx context.Context, bookingID, actorID uuid.UUID, isAdmin bool) ([]byte, error)) ([]byte, uuid.UUID, bool) {
	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid booking ID", nil, nil)
		return nil, uuid.Nil, false
	}

	userID, ok := actorID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return nil, uuid.Nil, false
	}

	data, err := render(c.Request.Context(), bookingID, userID, actorIsAdmin(c))
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			response.RespondJSON(c, "error", http.StatusNotFound, "Booking not found", nil, nil)
		case errors.Is(err, ErrNotTicketOwner):
			response.RespondJSON(c, "error", http.StatusForbidden, "You do not own this booking", nil, nil)
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to render ticket", nil, err.Error())
		}
		return nil, uuid.Nil, false
	}

	return data, bookingID, true
}
