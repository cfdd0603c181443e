package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/rental-booking/internal/httperr"
	"github.com/BruksfildServices01/rental-booking/internal/httpresp"
	ucBooking "github.com/BruksfildServices01/rental-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create       *ucBooking.CreateBooking
	get          *ucBooking.GetBooking
	updateStatus *ucBooking.UpdateBookingStatus
	listUser     *ucBooking.ListUserBookings
	cancel       *ucBooking.CancelBooking
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	get *ucBooking.GetBooking,
	updateStatus *ucBooking.UpdateBookingStatus,
	listUser *ucBooking.ListUserBookings,
	cancel *ucBooking.CancelBooking,
) *BookingHandler {
	return &BookingHandler{
		create:       create,
		get:          get,
		updateStatus: updateStatus,
		listUser:     listUser,
		cancel:       cancel,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	PropertyID uint   `json:"property_id" binding:"required"`
	CheckIn    string `json:"check_in" binding:"required,booking_date"`
	CheckOut   string `json:"check_out" binding:"required,booking_date"`
	Guests     int    `json:"guests" binding:"required,gt=0"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CancelBookingRequest struct {
	BookingID uint   `json:"booking_id" binding:"required"`
	Reason    string `json:"reason" binding:"max=1000"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		PropertyID: req.PropertyID,
		UserID:     currentUserID(c),
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Guests:     req.Guests,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, ucBooking.MsgCreated, b)
}

// ======================================================
// READ
// ======================================================

func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	b, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, b)
}

// ListByUser only lists the caller's own bookings.
func (h *BookingHandler) ListByUser(c *gin.Context) {
	userID, ok := uintParam(c, "userId")
	if !ok {
		return
	}

	if userID != currentUserID(c) {
		httperr.Forbidden(c, "forbidden", "You can only list your own bookings.")
		return
	}

	bookings, err := h.listUser.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, bookings)
}

// ======================================================
// STATUS
// ======================================================

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.updateStatus.Execute(c.Request.Context(), id, req.Status, currentUserID(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Message(c, http.StatusOK, ucBooking.MsgStatusUpdated, gin.H{"booking": b})
}

// ======================================================
// CANCEL
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	res, err := h.cancel.Execute(c.Request.Context(), ucBooking.CancelBookingInput{
		BookingID: req.BookingID,
		UserID:    currentUserID(c),
		Reason:    req.Reason,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Message(c, http.StatusOK, ucBooking.MsgCancelled, gin.H{
		"booking":      res.Booking,
		"cancellation": res.Cancellation,
	})
}
