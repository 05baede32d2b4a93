package handlers

import (
	"net/http"

	"easyislanders/models"
	"easyislanders/services/booking"
	"easyislanders/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking lifecycle over HTTP.
type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// requestUserID threads the caller's identity explicitly. There is no
// implicit "current user" anywhere in the engine; the id always travels as
// a parameter.
func requestUserID(c *gin.Context) string {
	return c.GetHeader("X-User-ID")
}

// CreateBookingHandler creates a rental or viewing booking.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	userID := requestUserID(c)
	if userID == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing user id", "the X-User-ID header is required")
		return
	}

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Svc.CreateBooking(c.Request.Context(), userID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// CompletePaymentHandler applies the user-triggered payment transition.
func (h *BookingHandler) CompletePaymentHandler(c *gin.Context) {
	bookingID := c.Param("id")

	if err := h.Svc.CompletePayment(c.Request.Context(), bookingID); err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": string(models.StatusConfirmed)})
}

// DispatchTaxiHandler dispatches a roster driver.
func (h *BookingHandler) DispatchTaxiHandler(c *gin.Context) {
	userID := requestUserID(c)
	if userID == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing user id", "the X-User-ID header is required")
		return
	}

	var req models.TaxiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	b, err := h.Svc.DispatchTaxi(c.Request.Context(), userID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"booking": b})
}

// GetBookingHandler returns one booking.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	b, err := h.Svc.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListBookingsHandler returns all bookings.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := h.Svc.ListBookings(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (h *BookingHandler) writeServiceError(c *gin.Context, err error) {
	switch {
	case booking.IsNotFound(err):
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
	case booking.IsInvalidRequest(err):
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
	default:
		h.Logger.Error("booking handler failure", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal error", "the request could not be completed")
	}
}
