package booking

import (
	"context"
	"testing"

	"doctorsportal/database/repository"
	"doctorsportal/database/repository/memstore"
	"doctorsportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func catalog() []models.Service {
	return []models.Service{
		{Name: "Cleaning", Slots: []string{"9AM", "10AM", "11AM"}},
		{Name: "Whitening", Slots: []string{"9AM", "1PM"}},
	}
}

func TestComputeAvailability(t *testing.T) {
	t.Run("booked slot removed, order kept", func(t *testing.T) {
		bookings := []models.Booking{{TreatmentName: "Cleaning", Date: "2024-01-05", TimeSlot: "10AM"}}

		got := ComputeAvailability(catalog(), bookings)

		require.Len(t, got, 2)
		assert.Equal(t, "Cleaning", got[0].Name)
		assert.Equal(t, []string{"9AM", "11AM"}, got[0].Slots)
		assert.Equal(t, []string{"9AM", "1PM"}, got[1].Slots)
	})

	t.Run("no bookings returns every slot", func(t *testing.T) {
		got := ComputeAvailability(catalog(), nil)

		require.Len(t, got, 2)
		assert.Equal(t, []string{"9AM", "10AM", "11AM"}, got[0].Slots)
		assert.Equal(t, []string{"9AM", "1PM"}, got[1].Slots)
	})

	t.Run("fully booked service keeps an empty slot list", func(t *testing.T) {
		bookings := []models.Booking{
			{TreatmentName: "Whitening", TimeSlot: "9AM"},
			{TreatmentName: "Whitening", TimeSlot: "1PM"},
		}

		got := ComputeAvailability(catalog(), bookings)

		require.Len(t, got, 2)
		assert.Equal(t, "Whitening", got[1].Name)
		assert.NotNil(t, got[1].Slots)
		assert.Empty(t, got[1].Slots)
	})

	t.Run("same slot of another treatment does not interfere", func(t *testing.T) {
		bookings := []models.Booking{{TreatmentName: "Whitening", TimeSlot: "9AM"}}

		got := ComputeAvailability(catalog(), bookings)

		assert.Equal(t, []string{"9AM", "10AM", "11AM"}, got[0].Slots)
		assert.Equal(t, []string{"1PM"}, got[1].Slots)
	})

	t.Run("bookings for unknown treatments are ignored", func(t *testing.T) {
		bookings := []models.Booking{{TreatmentName: "Surgery", TimeSlot: "9AM"}}

		got := ComputeAvailability(catalog(), bookings)

		assert.Equal(t, []string{"9AM", "10AM", "11AM"}, got[0].Slots)
	})

	t.Run("input catalog untouched and result idempotent", func(t *testing.T) {
		services := catalog()
		bookings := []models.Booking{{TreatmentName: "Cleaning", TimeSlot: "9AM"}}

		first := ComputeAvailability(services, bookings)
		second := ComputeAvailability(services, bookings)

		assert.Equal(t, first, second)
		assert.Equal(t, catalog(), services)
	})

	t.Run("result slots are a subset of the original", func(t *testing.T) {
		bookings := []models.Booking{
			{TreatmentName: "Cleaning", TimeSlot: "11AM"},
			{TreatmentName: "Cleaning", TimeSlot: "4PM"},
		}

		got := ComputeAvailability(catalog(), bookings)

		for i, svc := range catalog() {
			assert.Subset(t, svc.Slots, got[i].Slots)
			for _, slot := range svc.Slots {
				isBooked := false
				for _, b := range bookings {
					if b.TreatmentName == svc.Name && b.TimeSlot == slot {
						isBooked = true
					}
				}
				assert.Equal(t, !isBooked, contains(got[i].Slots, slot), "slot %s of %s", slot, svc.Name)
			}
		}
	})
}

func contains(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}

func newTestService(t *testing.T) (*DefaultBookingService, *repository.Store) {
	t.Helper()
	store := repository.NewMemoryStore()
	store.Services = memstore.NewServiceRepo(catalog()...)
	return NewBookingService(store, zap.NewNop()), store
}

func TestGetAvailable_FiltersByExactDate(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	_, err := store.Bookings.Create(ctx, &models.Booking{
		TreatmentName: "Cleaning",
		PatientEmail:  "a@x.com",
		Date:          "2024-01-05",
		TimeSlot:      "10AM",
	})
	require.NoError(t, err)

	got, err := svc.GetAvailable(ctx, "2024-01-05")
	require.NoError(t, err)
	assert.Equal(t, []string{"9AM", "11AM"}, got[0].Slots)

	got, err = svc.GetAvailable(ctx, "2024-01-06")
	require.NoError(t, err)
	assert.Equal(t, []string{"9AM", "10AM", "11AM"}, got[0].Slots)

	// No date normalisation: a differently formatted label is a different date.
	got, err = svc.GetAvailable(ctx, "Jan 5, 2024")
	require.NoError(t, err)
	assert.Equal(t, []string{"9AM", "10AM", "11AM"}, got[0].Slots)
}

func TestGetServiceNames(t *testing.T) {
	svc, _ := newTestService(t)

	names, err := svc.GetServiceNames(context.Background())
	require.NoError(t, err)
	require.Len(t, names, 2)
	assert.Equal(t, "Cleaning", names[0].Name)
	assert.Nil(t, names[0].Slots)
}
