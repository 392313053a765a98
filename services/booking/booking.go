package booking

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"doctorsportal/database"
	"doctorsportal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking inserts the booking unless one with the same treatment,
// patient and date already exists. The pre-check answers the common case;
// the unique dedupe index catches the concurrent one, which is then
// reported exactly like a pre-check hit.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, booking *models.Booking) (*CreateResult, error) {
	if err := s.validateSlot(ctx, booking); err != nil {
		return nil, err
	}

	existing, err := s.Store.Bookings.GetByKey(ctx, booking.Key())
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing booking: %w", err)
	}
	if existing != nil {
		return &CreateResult{Success: false, Existing: existing}, nil
	}

	// A rejected insert whose conflicting record is already gone gets one more try.
	for attempt := 0; attempt < 2; attempt++ {
		result, err := s.Store.Bookings.Create(ctx, booking)
		if err == nil {
			s.Logger.Info("booking created",
				zap.String("bookingID", result.InsertedID),
				zap.String("treatment", booking.TreatmentName),
				zap.String("date", booking.Date),
			)
			return &CreateResult{Success: true, Result: result}, nil
		}
		if !errors.Is(err, database.ErrDuplicate) {
			return nil, err
		}

		s.Logger.Info("concurrent duplicate booking rejected by index",
			zap.String("treatment", booking.TreatmentName),
			zap.String("patient", booking.PatientEmail),
			zap.String("date", booking.Date),
			zap.Int("attempt", attempt+1),
		)
		existing, err := s.Store.Bookings.GetByKey(ctx, booking.Key())
		if err != nil {
			return nil, fmt.Errorf("failed to load duplicate booking: %w", err)
		}
		if existing != nil {
			return &CreateResult{Success: false, Existing: existing}, nil
		}
	}
	return nil, fmt.Errorf("%w: booking for %s on %s kept conflicting without a visible record",
		database.ErrDuplicate, booking.PatientEmail, booking.Date)
}

// validateSlot checks that the booking references a catalog service and one of its slots.
func (s *DefaultBookingService) validateSlot(ctx context.Context, booking *models.Booking) error {
	services, err := s.Store.Services.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load services: %w", err)
	}
	for _, svc := range services {
		if svc.Name != booking.TreatmentName {
			continue
		}
		if !slices.Contains(svc.Slots, booking.TimeSlot) {
			return fmt.Errorf("%w: %q is not a slot of %q", ErrUnknownSlot, booking.TimeSlot, svc.Name)
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownTreatment, booking.TreatmentName)
}

// GetPatientBookings lists every booking for the patient email.
func (s *DefaultBookingService) GetPatientBookings(ctx context.Context, email string) ([]models.Booking, error) {
	bookings, err := s.Store.Bookings.GetByPatient(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s: %w", email, err)
	}
	return bookings, nil
}

// GetBooking fetches one booking by id.
func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	return s.Store.Bookings.GetByID(ctx, id)
}

// MarkPaid records the payment and flags the booking as paid.
func (s *DefaultBookingService) MarkPaid(ctx context.Context, id string, payment models.Payment) (models.UpdateResult, error) {
	booking, err := s.Store.Bookings.GetByID(ctx, id)
	if err != nil {
		return models.UpdateResult{}, err
	}

	payment.BookingID = id
	if payment.PaymentID == "" {
		payment.PaymentID = uuid.New().String()
	}
	if payment.PatientEmail == "" {
		payment.PatientEmail = booking.PatientEmail
	}
	if payment.Amount == 0 {
		payment.Amount = booking.Price
	}
	if _, err := s.Store.Payments.Create(ctx, &payment); err != nil {
		return models.UpdateResult{}, err
	}

	result, err := s.Store.Bookings.MarkPaid(ctx, id, payment.TransactionID)
	if err != nil {
		return models.UpdateResult{}, err
	}

	s.Logger.Info("booking marked paid",
		zap.String("bookingID", id),
		zap.String("transactionID", payment.TransactionID),
	)
	return result, nil
}
