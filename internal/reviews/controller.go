package reviews

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cinebook/internal/shared/utils/response"
)

type Controller interface {
	CreateReview(c *gin.Context)
	GetShowReviews(c *gin.Context)
	UpdateReview(c *gin.Context)
	DeleteReview(c *gin.Context)
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

func (ctrl *controller) CreateReview(c *gin.Context) {
	showID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid show ID", nil, nil)
		return
	}

	authorID, ok := actorID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	review, err := ctrl.service.CreateReview(c.Request.Context(), showID, authorID, req)
	if err != nil {
		if errors.Is(err, ErrShowNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "Show not found", nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to create review", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Review created successfully", review, nil)
}

func (ctrl *controller) GetShowReviews(c *gin.Context) {
	showID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid show ID", nil, nil)
		return
	}

	reviews, err := ctrl.service.GetShowReviews(c.Request.Context(), showID)
	if err != nil {
		if errors.Is(err, ErrShowNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "Show not found", nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to get reviews", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Reviews retrieved", reviews, nil)
}

func (ctrl *controller) UpdateReview(c *gin.Context) {
	reviewID, err := uuid.Parse(c.Param("reviewId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid review ID", nil, nil)
		return
	}

	userID, ok := actorID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	review, err := ctrl.service.UpdateReview(c.Request.Context(), reviewID, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrReviewNotFound):
			response.RespondJSON(c, "error", http.StatusNotFound, "Review not found", nil, nil)
		case errors.Is(err, ErrNotReviewAuthor):
			response.RespondJSON(c, "error", http.StatusForbidden, "You can only edit your own reviews", nil, nil)
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to update review", nil, err.Error())
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Review updated successfully", review, nil)
}

func (ctrl *controller) DeleteReview(c *gin.Context) {
	reviewID, err := uuid.Parse(c.Param("reviewId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid review ID", nil, nil)
		return
	}

	userID, ok := actorID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	if err := ctrl.service.DeleteReview(c.Request.Context(), reviewID, userID); err != nil {
		switch {
		case errors.Is(err, ErrReviewNotFound):
			response.RespondJSON(c, "error", http.StatusNotFound, "Review not found", nil, nil)
		case errors.Is(err, ErrNotReviewAuthor):
			response.RespondJSON(c, "error", http.StatusForbidden, "You can only delete your own reviews", nil, nil)
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to delete review", nil, err.Error())
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Review deleted successfully", nil, nil)
}
