package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cinebook/internal/shared/utils/response"
)

type Controller interface {
	GetProfile(c *gin.Context)
	UpdateProfile(c *gin.Context)
	GetTickets(c *gin.Context)
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

func (ctrl *controller) GetProfile(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	profile, err := ctrl.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "User not found", nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to get profile", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Profile retrieved", profile, nil)
}

func (ctrl *controller) UpdateProfile(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	profile, err := ctrl.service.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "User not found", nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to update profile", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Profile updated", profile, nil)
}

func (ctrl *controller) GetTickets(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	summary, err := ctrl.service.GetTickets(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "User not found", nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to get tickets", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Tickets retrieved", summary, nil)
}
