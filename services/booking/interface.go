package booking

import (
	"context"

	"doctorsportal/database/repository"
	"doctorsportal/models"

	"go.uber.org/zap"
)

// BookingService covers availability, booking creation and payment bookkeeping.
type BookingService interface {
	GetServiceNames(ctx context.Context) ([]models.Service, error)
	GetAvailable(ctx context.Context, date string) ([]models.AvailableService, error)
	CreateBooking(ctx context.Context, booking *models.Booking) (*CreateResult, error)
	GetPatientBookings(ctx context.Context, email string) ([]models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	MarkPaid(ctx context.Context, id string, payment models.Payment) (models.UpdateResult, error)
}

// CreateResult reports whether a booking was inserted or an existing one blocked it.
type CreateResult struct {
	Success  bool
	Result   models.InsertResult
	Existing *models.Booking
}

// DefaultBookingService implements BookingService on top of the storage context.
type DefaultBookingService struct {
	Store  *repository.Store
	Logger *zap.Logger
}

// NewBookingService creates a DefaultBookingService.
func NewBookingService(store *repository.Store, logger *zap.Logger) *DefaultBookingService {
	return &DefaultBookingService{Store: store, Logger: logger}
}
