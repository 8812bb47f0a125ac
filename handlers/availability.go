package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"versatil/services/availability"
	"versatil/utils"
)

// AvailabilityHandler serves the slot grid for the booking calendar.
type AvailabilityHandler struct {
	Availability availability.AvailabilityService
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Availability: svc}
}

// GetDayAvailability handles GET /api/availability?stylistId=&date=&serviceId=.
// serviceId is optional; without it slots are checked against the default
// service duration.
func (h *AvailabilityHandler) GetDayAvailability(c *gin.Context) {
	stylistID := c.Query("stylistId")
	date := c.Query("date")
	serviceID := c.Query("serviceId")

	if stylistID == "" || date == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", "stylistId and date are required")
		return
	}

	day, err := h.Availability.GetDayAvailability(c.Request.Context(), stylistID, date, serviceID)
	if err != nil {
		if errors.Is(err, availability.ErrWorkerNotFound) {
			utils.JSONError(c, http.StatusNotFound, "stylist not found", stylistID)
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	c.JSON(http.StatusOK, day)
}
