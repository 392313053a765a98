package paymentRepo

import (
	"context"

	"doctorsportal/models"
)

// PaymentRepository records completed payments.
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) (models.InsertResult, error)
}
