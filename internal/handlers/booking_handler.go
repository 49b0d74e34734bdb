package handlers

import (
	"swiftride/internal/middleware"
	"swiftride/internal/models"
	"swiftride/internal/services"
	"swiftride/internal/utils"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingService services.BookingService
}

func NewBookingHandler(bookingService services.BookingService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

// OpenDraft starts a booking draft for a vehicle.
func (h *BookingHandler) OpenDraft(c *gin.Context) {
	var req struct {
		VehicleID string `json:"vehicle_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	draft, err := h.bookingService.OpenDraft(c.Request.Context(), req.VehicleID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, "Booking draft opened", draft)
}

// GetDraft returns the draft's current state, details and quote.
func (h *BookingHandler) GetDraft(c *gin.Context) {
	draft, err := h.bookingService.GetDraft(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, "Booking draft retrieved", draft)
}

// SetDraftDetails stores the booking form and advances the draft to payment.
func (h *BookingHandler) SetDraftDetails(c *gin.Context) {
	var details models.BookingDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	draft, err := h.bookingService.SetDraftDetails(c.Param("id"), &details)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, "Booking details saved", draft)
}

// CancelDraftPayment steps a draft back from the payment form.
func (h *BookingHandler) CancelDraftPayment(c *gin.Context) {
	draft, err := h.bookingService.CancelDraftPayment(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, "Payment cancelled", draft)
}

// DiscardDraft abandons a draft entirely.
func (h *BookingHandler) DiscardDraft(c *gin.Context) {
	h.bookingService.DiscardDraft(c.Param("id"))
	utils.SuccessResponse(c, "Booking draft discarded", nil)
}

// SubmitDraft takes the payment input and completes the booking on behalf of
// the authenticated session.
func (h *BookingHandler) SubmitDraft(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var card models.CardDetails
	if err := c.ShouldBindJSON(&card); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	booked, err := h.bookingService.SubmitDraft(c.Request.Context(), sess.Token, c.Param("id"), &card)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, "Booking confirmed", booked)
}

// ListBookings returns the user's bookings grouped for the dashboard.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	groups, err := h.bookingService.ListBookings(c.Request.Context(), sess.Token)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, "Bookings retrieved", groups)
}

// GetBooking returns one booking by id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	booked, err := h.bookingService.GetBooking(c.Request.Context(), sess.Token, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, "Booking retrieved", booked)
}

// CancelBooking forwards a cancellation to the platform.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	if err := h.bookingService.CancelBooking(c.Request.Context(), sess.Token, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, "Booking cancellation requested", nil)
}
