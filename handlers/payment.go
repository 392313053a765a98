package handlers

import (
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	PaymentSvc payment.PaymentService
	Logger     *zap.Logger
}

func NewPaymentHandler(svc payment.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{PaymentSvc: svc, Logger: logger}
}

// CreatePaymentIntent handles POST /create-payment-intent.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var input models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid price", "details": err.Error()})
		return
	}

	secret, err := h.PaymentSvc.CreateIntent(c.Request.Context(), input.Price)
	if err != nil {
		respondError(c, err, "failed to create payment intent")
		return
	}
	c.JSON(http.StatusOK, models.PaymentIntentResponse{ClientSecret: secret})
}
