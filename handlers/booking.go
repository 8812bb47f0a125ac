package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"versatil/models"
	"versatil/services/booking"
	"versatil/utils"
)

// BookingHandler exposes the wizard session lifecycle over HTTP.
type BookingHandler struct {
	Booking booking.BookingSessionService
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingSessionService) *BookingHandler {
	return &BookingHandler{Booking: svc}
}

// sessionUpdateInput is the PUT payload; action selects the wizard step to
// apply and the remaining fields carry that step's data.
type sessionUpdateInput struct {
	Action    string                `json:"action" binding:"required"`
	ServiceID string                `json:"serviceId"`
	StylistID string                `json:"stylistId"`
	Date      string                `json:"date"`
	Time      string                `json:"time"`
	Details   models.ContactDetails `json:"details"`
	Step      int                   `json:"step"`
}

// InitiateSession handles POST /api/booking/session.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	session, err := h.Booking.Initiate(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to start booking session", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": session})
}

// GetSession handles GET /api/booking/session/:sessionID.
func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.Booking.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// UpdateSession handles PUT /api/booking/session/:sessionID.
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	var input sessionUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	ctx := c.Request.Context()
	id := c.Param("sessionID")

	var (
		session *models.BookingSession
		err     error
	)
	switch input.Action {
	case "selectService":
		session, err = h.Booking.SelectService(ctx, id, input.ServiceID)
	case "selectStylist":
		session, err = h.Booking.SelectStylist(ctx, id, input.StylistID)
	case "selectDateTime":
		session, err = h.Booking.SelectDateTime(ctx, id, input.Date, input.Time)
	case "enterDetails":
		session, err = h.Booking.EnterDetails(ctx, id, input.Details)
	case "goToStep":
		session, err = h.Booking.GoToStep(ctx, id, input.Step)
	default:
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "unknown action: "+input.Action)
		return
	}
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// ConfirmSession handles POST /api/booking/session/:sessionID/confirm.
func (h *BookingHandler) ConfirmSession(c *gin.Context) {
	appt, err := h.Booking.Confirm(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"appointment": appt})
}

// CancelSession handles DELETE /api/booking/session/:sessionID.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Booking.Cancel(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// respondError maps wizard errors onto HTTP statuses. ErrSlotTaken is a
// conflict, not a client mistake: the grid moved underneath the customer.
func (h *BookingHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", "")
	case errors.Is(err, booking.ErrSlotTaken):
		utils.JSONError(c, http.StatusConflict, "selected slot is no longer available", "please pick another time")
	case errors.Is(err, booking.ErrStylistUnknown),
		errors.Is(err, booking.ErrInvalidSlot),
		errors.Is(err, booking.ErrInvalidDetails),
		errors.Is(err, booking.ErrInvalidStep),
		errors.Is(err, booking.ErrNotReadyToConfirm):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}
