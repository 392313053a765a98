package booking

import (
	"context"
	"sync"
	"testing"

	"doctorsportal/database"
	"doctorsportal/database/repository/memstore"
	"doctorsportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBooking() *models.Booking {
	return &models.Booking{
		TreatmentName: "Cleaning",
		PatientEmail:  "a@x.com",
		PatientName:   "Ada",
		Date:          "2024-01-05",
		TimeSlot:      "10AM",
		Price:         45,
	}
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts when no duplicate exists", func(t *testing.T) {
		svc, store := newTestService(t)

		res, err := svc.CreateBooking(ctx, newBooking())
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.True(t, res.Result.Acknowledged)
		assert.NotEmpty(t, res.Result.InsertedID)
		assert.Nil(t, res.Existing)

		stored, err := store.Bookings.GetByID(ctx, res.Result.InsertedID)
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", stored.PatientEmail)
	})

	t.Run("returns the existing booking on duplicate", func(t *testing.T) {
		svc, store := newTestService(t)

		first, err := svc.CreateBooking(ctx, newBooking())
		require.NoError(t, err)

		dup := newBooking()
		dup.TimeSlot = "11AM"
		res, err := svc.CreateBooking(ctx, dup)
		require.NoError(t, err)
		assert.False(t, res.Success)
		require.NotNil(t, res.Existing)
		assert.Equal(t, first.Result.InsertedID, res.Existing.ID.Hex())
		assert.Equal(t, "10AM", res.Existing.TimeSlot)
		assert.Equal(t, 1, store.Bookings.(*memstore.BookingRepo).Len())
	})

	t.Run("other date is not a duplicate", func(t *testing.T) {
		svc, store := newTestService(t)

		_, err := svc.CreateBooking(ctx, newBooking())
		require.NoError(t, err)

		next := newBooking()
		next.Date = "2024-01-06"
		res, err := svc.CreateBooking(ctx, next)
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, 2, store.Bookings.(*memstore.BookingRepo).Len())
	})

	t.Run("unknown treatment rejected", func(t *testing.T) {
		svc, _ := newTestService(t)

		b := newBooking()
		b.TreatmentName = "Surgery"
		_, err := svc.CreateBooking(ctx, b)
		assert.ErrorIs(t, err, ErrUnknownTreatment)
	})

	t.Run("slot outside the service schedule rejected", func(t *testing.T) {
		svc, _ := newTestService(t)

		b := newBooking()
		b.TimeSlot = "3AM"
		_, err := svc.CreateBooking(ctx, b)
		assert.ErrorIs(t, err, ErrUnknownSlot)
	})

	t.Run("concurrent duplicates insert exactly once", func(t *testing.T) {
		svc, store := newTestService(t)

		const workers = 8
		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			successes int
		)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				res, err := svc.CreateBooking(ctx, newBooking())
				if !assert.NoError(t, err) {
					return
				}
				if res.Success {
					mu.Lock()
					successes++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, successes)
		assert.Equal(t, 1, store.Bookings.(*memstore.BookingRepo).Len())
	})
}

func TestMarkPaid(t *testing.T) {
	ctx := context.Background()

	t.Run("records payment and flags booking", func(t *testing.T) {
		svc, store := newTestService(t)
		created, err := svc.CreateBooking(ctx, newBooking())
		require.NoError(t, err)
		id := created.Result.InsertedID

		res, err := svc.MarkPaid(ctx, id, models.Payment{TransactionID: "pi_123"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.MatchedCount)
		assert.Equal(t, int64(1), res.ModifiedCount)

		booking, err := svc.GetBooking(ctx, id)
		require.NoError(t, err)
		assert.True(t, booking.Paid)
		assert.Equal(t, "pi_123", booking.TransactionID)

		payments := store.Payments.(*memstore.PaymentRepo).All()
		require.Len(t, payments, 1)
		assert.Equal(t, id, payments[0].BookingID)
		assert.Equal(t, "a@x.com", payments[0].PatientEmail)
		assert.Equal(t, 45.0, payments[0].Amount)
		assert.NotEmpty(t, payments[0].PaymentID)
	})

	t.Run("unknown booking", func(t *testing.T) {
		svc, store := newTestService(t)

		_, err := svc.MarkPaid(ctx, "65a000000000000000000000", models.Payment{TransactionID: "pi_1"})
		assert.ErrorIs(t, err, database.ErrNotFound)
		assert.Empty(t, store.Payments.(*memstore.PaymentRepo).All())
	})

	t.Run("malformed id", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.MarkPaid(ctx, "not-an-id", models.Payment{TransactionID: "pi_1"})
		assert.ErrorIs(t, err, database.ErrInvalidID)
	})
}

func TestGetPatientBookings(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.CreateBooking(ctx, newBooking())
	require.NoError(t, err)
	other := newBooking()
	other.PatientEmail = "b@x.com"
	_, err = svc.CreateBooking(ctx, other)
	require.NoError(t, err)

	got, err := svc.GetPatientBookings(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a@x.com", got[0].PatientEmail)

	none, err := svc.GetPatientBookings(ctx, "nobody@x.com")
	require.NoError(t, err)
	assert.Empty(t, none)
}

// vanishingDuplicateRepo rejects the first conflicts inserts as duplicates
// while GetByKey sees nothing, as when the winning record is removed between
// the insert and the re-read.
type vanishingDuplicateRepo struct {
	*memstore.BookingRepo
	conflicts int
	creates   int
}

func (r *vanishingDuplicateRepo) GetByKey(context.Context, models.BookingKey) (*models.Booking, error) {
	return nil, nil
}

func (r *vanishingDuplicateRepo) Create(ctx context.Context, booking *models.Booking) (models.InsertResult, error) {
	r.creates++
	if r.creates <= r.conflicts {
		return models.InsertResult{}, database.ErrDuplicate
	}
	return r.BookingRepo.Create(ctx, booking)
}

func TestCreateBooking_DuplicateWithoutVisibleRecord(t *testing.T) {
	ctx := context.Background()

	t.Run("retries the insert once", func(t *testing.T) {
		svc, store := newTestService(t)
		repo := &vanishingDuplicateRepo{BookingRepo: memstore.NewBookingRepo(), conflicts: 1}
		store.Bookings = repo

		res, err := svc.CreateBooking(ctx, newBooking())
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Nil(t, res.Existing)
		assert.Equal(t, 2, repo.creates)
		assert.Equal(t, 1, repo.Len())
	})

	t.Run("gives up with an error instead of a null record", func(t *testing.T) {
		svc, store := newTestService(t)
		repo := &vanishingDuplicateRepo{BookingRepo: memstore.NewBookingRepo(), conflicts: 2}
		store.Bookings = repo

		res, err := svc.CreateBooking(ctx, newBooking())
		assert.ErrorIs(t, err, database.ErrDuplicate)
		assert.Nil(t, res)
		assert.Equal(t, 2, repo.creates)
		assert.Equal(t, 0, repo.Len())
	})
}
