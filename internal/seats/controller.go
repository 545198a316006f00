package seats

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cinebook/internal/shared/utils/constants"
	"cinebook/internal/shared/utils/response"
	"cinebook/pkg/cache"
	"cinebook/pkg/logger"
)

// ShowChecker verifies a show exists before inventory operations
// (interface kept local to avoid a dependency on the shows package)
type ShowChecker interface {
	ShowExists(ctx context.Context, showID uuid.UUID) (bool, error)
}

type Controller interface {
	ListPublic(c *gin.Context)
	ListAdmin(c *gin.Context)
	Replace(c *gin.Context)
}

type controller struct {
	service      Service
	shows        ShowChecker
	cacheService cache.Service
}

func NewController(service Service, shows ShowChecker) Controller {
	return &controller{service: service, shows: shows}
}

func NewControllerWithCache(service Service, shows ShowChecker, cacheService cache.Service) Controller {
	return &controller{service: service, shows: shows, cacheService: cacheService}
}

func (ctrl *controller) resolveShow(c *gin.Context) (uuid.UUID, bool) {
	showID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid show ID", nil, nil)
		return uuid.Nil, false
	}

	exists, err := ctrl.shows.ShowExists(c.Request.Context(), showID)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to resolve show", nil, err.Error())
		return uuid.Nil, false
	}
	if !exists {
		response.RespondJSON(c, "error", http.StatusNotFound, "Show not found", nil, nil)
		return uuid.Nil, false
	}
	return showID, true
}

// ListPublic returns the seat map without holder identities.
// ?available=true filters to bookable seats only.
func (ctrl *controller) ListPublic(c *gin.Context) {
	showID, ok := ctrl.resolveShow(c)
	if !ok {
		return
	}

	availableOnly := c.Query("available") == "true"

	ctx := c.Request.Context()
	if ctrl.cacheService != nil && !availableOnly {
		cacheKey := constants.BuildShowSeatsKey(showID.String())
		var cached []SeatResponse
		if err := ctrl.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			response.RespondJSON(c, "success", http.StatusOK, "Seats retrieved", cached, nil)
			return
		}
	}

	seatList, err := ctrl.service.ListByShow(ctx, showID, availableOnly)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to get seats", nil, err.Error())
		return
	}

	if ctrl.cacheService != nil && !availableOnly {
		cacheKey := constants.BuildShowSeatsKey(showID.String())
		if err := ctrl.cacheService.Set(ctx, cacheKey, seatList, constants.TTL_SEATS_AVAILABLE); err != nil {
			logger.GetDefault().Debug("failed to cache seat map", "key", cacheKey, "error", err)
		}
	}

	response.RespondJSON(c, "success", http.StatusOK, "Seats retrieved", seatList, nil)
}

// ListAdmin returns the seat map including who booked each seat
func (ctrl *controller) ListAdmin(c *gin.Context) {
	showID, ok := ctrl.resolveShow(c)
	if !ok {
		return
	}

	seatList, err := ctrl.service.ListByShowAdmin(c.Request.Context(), showID)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to get seats", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Seats retrieved", seatList, nil)
}

// Replace wholesale-overwrites the seat map of a show
func (ctrl *controller) Replace(c *gin.Context) {
	showID, ok := ctrl.resolveShow(c)
	if !ok {
		return
	}

	var req ReplaceSeatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	seatList, err := ctrl.service.Replace(c.Request.Context(), showID, req.SeatNumbers)
	if err != nil {
		if errors.Is(err, ErrInvalidSeatMap) {
			response.RespondJSON(c, "error", http.StatusBadRequest, err.Error(), nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to replace seats", nil, err.Error())
		return
	}

	if ctrl.cacheService != nil {
		if err := ctrl.cacheService.DeletePattern(c.Request.Context(), constants.InvalidationPatternForShow(showID.String())); err != nil {
			logger.GetDefault().Debug("failed to invalidate seat cache", "show_id", showID.String(), "error", err)
		}
	}

	response.RespondJSON(c, "success", http.StatusOK, "Seat map replaced", seatList, nil)
}
