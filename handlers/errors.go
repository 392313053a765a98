package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/database"
	"doctorsportal/services/booking"
	"doctorsportal/services/payment"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP statuses.
func respondError(c *gin.Context, err error, message string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, database.ErrInvalidID),
		errors.Is(err, booking.ErrUnknownTreatment),
		errors.Is(err, booking.ErrUnknownSlot),
		errors.Is(err, payment.ErrInvalidAmount),
		errors.Is(err, user.ErrEmailRequired):
		status = http.StatusBadRequest
	case errors.Is(err, database.ErrNotFound):
		status = http.StatusNotFound
	}
	utils.JSONError(c, status, message, err.Error())
}
