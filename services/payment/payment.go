package payment

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"
)

// DefaultCurrency is the ISO code every intent is created in.
const DefaultCurrency = "usd"

// ErrInvalidAmount is returned for prices that do not convert to a positive charge.
var ErrInvalidAmount = errors.New("invalid payment amount")

type PaymentService interface {
	// CreateIntent converts price into minor units and opens a payment intent.
	CreateIntent(ctx context.Context, price float64) (string, error)
}

type DefaultPaymentService struct {
	Gateway Gateway
	Logger  *zap.Logger
}

func NewPaymentService(gateway Gateway, logger *zap.Logger) *DefaultPaymentService {
	return &DefaultPaymentService{Gateway: gateway, Logger: logger}
}

// ToMinorUnits converts a major-unit price into the gateway's smallest unit.
func ToMinorUnits(price float64) (int64, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidAmount, price)
	}
	amount := int64(math.Round(price * 100))
	if amount <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidAmount, price)
	}
	return amount, nil
}

func (s *DefaultPaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount, err := ToMinorUnits(price)
	if err != nil {
		return "", err
	}

	secret, err := s.Gateway.CreatePaymentIntent(ctx, amount, DefaultCurrency)
	if err != nil {
		s.Logger.Error("payment intent creation failed", zap.Int64("amount", amount), zap.Error(err))
		return "", err
	}
	s.Logger.Info("payment intent created", zap.Int64("amount", amount), zap.String("currency", DefaultCurrency))
	return secret, nil
}
