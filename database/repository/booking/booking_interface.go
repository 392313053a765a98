package bookingRepo

import (
	"context"

	"doctorsportal/models"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// GetByPatient retrieves every booking made by the patient email.
	GetByPatient(ctx context.Context, email string) ([]models.Booking, error)
	// GetByDate retrieves every booking whose date equals date exactly.
	GetByDate(ctx context.Context, date string) ([]models.Booking, error)
	// GetByKey retrieves the booking holding the dedupe key, or nil if none does.
	GetByKey(ctx context.Context, key models.BookingKey) (*models.Booking, error)
	// GetByID retrieves a booking by its hex id.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// Create inserts a new booking. A unique-index violation yields database.ErrDuplicate.
	Create(ctx context.Context, booking *models.Booking) (models.InsertResult, error)
	// MarkPaid sets paid and transactionId on the booking with the given id.
	MarkPaid(ctx context.Context, id string, transactionID string) (models.UpdateResult, error)
}
