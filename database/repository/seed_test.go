package repository_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"doctorsportal/database/repository"
	"doctorsportal/models"
	"doctorsportal/services/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewSeededMemoryStore_DemoCatalogTakesBookings(t *testing.T) {
	store, err := repository.NewSeededMemoryStore("")
	require.NoError(t, err)
	svc := booking.NewBookingService(store, zap.NewNop())
	ctx := context.Background()

	available, err := svc.GetAvailable(ctx, "May 1, 2026")
	require.NoError(t, err)
	require.Len(t, available, len(repository.DemoCatalog()))

	first := available[0]
	require.NotEmpty(t, first.Slots)
	res, err := svc.CreateBooking(ctx, &models.Booking{
		TreatmentName: first.Name,
		Date:          "May 1, 2026",
		TimeSlot:      first.Slots[0],
		PatientEmail:  "pat@example.com",
	})
	require.NoError(t, err)
	assert.True(t, res.Success)

	after, err := svc.GetAvailable(ctx, "May 1, 2026")
	require.NoError(t, err)
	assert.NotContains(t, after[0].Slots, first.Slots[0])
	assert.Len(t, after[0].Slots, len(first.Slots)-1)
}

func TestNewSeededMemoryStore_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "services.json")
	seed := `[{"name":"Cleaning","slots":["9AM","10AM"],"price":20}]`
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o600))

	store, err := repository.NewSeededMemoryStore(path)
	require.NoError(t, err)
	svc := booking.NewBookingService(store, zap.NewNop())
	ctx := context.Background()

	res, err := svc.CreateBooking(ctx, &models.Booking{
		TreatmentName: "Cleaning",
		Date:          "May 2, 2026",
		TimeSlot:      "9AM",
		PatientEmail:  "pat@example.com",
	})
	require.NoError(t, err)
	assert.True(t, res.Success)

	available, err := svc.GetAvailable(ctx, "May 2, 2026")
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, []string{"10AM"}, available[0].Slots)
}

func TestLoadServiceSeed_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := repository.LoadServiceSeed(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"name":`), 0o600))
	_, err = repository.LoadServiceSeed(bad)
	assert.Error(t, err)

	unnamed := filepath.Join(dir, "unnamed.json")
	require.NoError(t, os.WriteFile(unnamed, []byte(`[{"slots":["9AM"]}]`), 0o600))
	_, err = repository.LoadServiceSeed(unnamed)
	assert.Error(t, err)
}

func TestDemoCatalog_ReturnsCopy(t *testing.T) {
	a := repository.DemoCatalog()
	a[0].Slots[0] = "mutated"
	b := repository.DemoCatalog()
	assert.NotEqual(t, "mutated", b[0].Slots[0])
}
