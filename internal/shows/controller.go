package shows

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cinebook/internal/shared/utils/response"
)

type Controller interface {
	CreateShow(c *gin.Context)
	GetShow(c *gin.Context)
	GetAllShows(c *gin.Context)
	UpdateShow(c *gin.Context)
	DeleteShow(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateShow(c *gin.Context) {
	var req CreateShowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	ownerID, exists := c.Get("user_id")
	if !exists {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Admin not authenticated", nil, nil)
		return
	}

	ownerUUID, err := uuid.Parse(ownerID.(string))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Invalid admin ID format", nil, nil)
		return
	}

	show, err := ctrl.service.CreateShow(c.Request.Context(), ownerUUID, req)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Show created successfully", show, nil)
}

func (ctrl *controller) GetShow(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// Fall back to slug lookup for human-friendly URLs
		show, slugErr := ctrl.service.GetShowBySlug(c.Request.Context(), c.Param("id"))
		if slugErr != nil {
			response.RespondJSON(c, "error", http.StatusNotFound, "Show not found", nil, nil)
			return
		}
		response.RespondJSON(c, "success", http.StatusOK, "Show retrieved", show, nil)
		return
	}

	show, err := ctrl.service.GetShow(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrShowNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "Show not found", nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to get show", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Show retrieved", show, nil)
}

func (ctrl *controller) GetAllShows(c *gin.Context) {
	shows, err := ctrl.service.GetAllShows(c.Request.Context())
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to list shows", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Shows retrieved", shows, nil)
}

func (ctrl *controller) UpdateShow(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid show ID", nil, nil)
		return
	}

	var req UpdateShowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	show, err := ctrl.service.UpdateShow(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrShowNotFound):
			response.RespondJSON(c, "error", http.StatusNotFound, "Show not found", nil, nil)
		case errors.Is(err, ErrInvalidGenre):
			response.RespondJSON(c, "error", http.StatusBadRequest, err.Error(), nil, nil)
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to update show", nil, err.Error())
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Show updated successfully", show, nil)
}

func (ctrl *controller) DeleteShow(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid show ID", nil, nil)
		return
	}

	if err := ctrl.service.DeleteShow(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrShowNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "Show not found", nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to delete show", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Show deleted successfully", nil, nil)
}
