package booking

import (
	"context"
	"fmt"

	"doctorsportal/models"

	"go.uber.org/zap"
)

// ComputeAvailability narrows each service's slots to the ones no booking has
// taken. bookings must already be restricted to a single date. The result
// keeps catalog order and slot order; a fully booked service is returned with
// an empty slot list.
func ComputeAvailability(services []models.Service, bookings []models.Booking) []models.AvailableService {
	booked := make(map[string]map[string]struct{})
	for _, b := range bookings {
		taken, ok := booked[b.TreatmentName]
		if !ok {
			taken = make(map[string]struct{})
			booked[b.TreatmentName] = taken
		}
		taken[b.TimeSlot] = struct{}{}
	}

	available := make([]models.AvailableService, 0, len(services))
	for _, s := range services {
		taken := booked[s.Name]
		slots := make([]string, 0, len(s.Slots))
		for _, slot := range s.Slots {
			if _, ok := taken[slot]; !ok {
				slots = append(slots, slot)
			}
		}
		available = append(available, models.AvailableService{
			ID:    s.ID,
			Name:  s.Name,
			Slots: slots,
			Price: s.Price,
		})
	}
	return available
}

// GetAvailable loads the catalog and the bookings for date and computes availability.
func (s *DefaultBookingService) GetAvailable(ctx context.Context, date string) ([]models.AvailableService, error) {
	services, err := s.Store.Services.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load services: %w", err)
	}
	bookings, err := s.Store.Bookings.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s: %w", date, err)
	}

	s.Logger.Debug("computing availability",
		zap.String("date", date),
		zap.Int("services", len(services)),
		zap.Int("bookings", len(bookings)),
	)
	return ComputeAvailability(services, bookings), nil
}

// GetServiceNames lists the catalog projected to service names.
func (s *DefaultBookingService) GetServiceNames(ctx context.Context) ([]models.Service, error) {
	services, err := s.Store.Services.GetNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load services: %w", err)
	}
	return services, nil
}
