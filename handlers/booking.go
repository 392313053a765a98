package handlers

import (
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/booking"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// BookingHandler serves the catalog, availability and booking endpoints.
type BookingHandler struct {
	BookingSvc booking.BookingService
	Logger     *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{BookingSvc: svc, Logger: logger}
}

// GetServices handles GET /services.
func (h *BookingHandler) GetServices(c *gin.Context) {
	services, err := h.BookingSvc.GetServiceNames(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to fetch services")
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetAvailable handles GET /available?date=.
func (h *BookingHandler) GetAvailable(c *gin.Context) {
	date := c.Query("date")
	services, err := h.BookingSvc.GetAvailable(c.Request.Context(), date)
	if err != nil {
		respondError(c, err, "failed to compute availability")
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetPatientBookings handles GET /booking?patient=.
func (h *BookingHandler) GetPatientBookings(c *gin.Context) {
	bookings, err := h.BookingSvc.GetPatientBookings(c.Request.Context(), c.Query("patient"))
	if err != nil {
		respondError(c, err, "failed to fetch bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBooking handles GET /booking/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.BookingSvc.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "failed to fetch booking")
		return
	}
	c.JSON(http.StatusOK, b)
}

// CreateBooking handles POST /booking.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input models.Booking
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid booking", "details": err.Error()})
		return
	}
	// Clients never choose ids or payment state.
	input.Paid = false
	input.TransactionID = ""
	input.ID = primitive.NilObjectID

	res, err := h.BookingSvc.CreateBooking(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err, "failed to create booking")
		return
	}
	if !res.Success {
		c.JSON(http.StatusOK, gin.H{"success": false, "bookingInfoDoc": res.Existing})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": res.Result})
}

// MarkPaid handles PATCH /booking/:id.
func (h *BookingHandler) MarkPaid(c *gin.Context) {
	var input models.Payment
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payment", "details": err.Error()})
		return
	}

	result, err := h.BookingSvc.MarkPaid(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondError(c, err, "failed to record payment")
		return
	}
	c.JSON(http.StatusOK, result)
}
