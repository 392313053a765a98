// Package memstore holds goroutine-safe in-memory repositories used for
// local runs without MongoDB and as test doubles.
package memstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"doctorsportal/database"
	bookingRepo "doctorsportal/database/repository/booking"
	doctorRepo "doctorsportal/database/repository/doctor"
	paymentRepo "doctorsportal/database/repository/payment"
	serviceRepo "doctorsportal/database/repository/service"
	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	_ serviceRepo.ServiceRepository = (*ServiceRepo)(nil)
	_ bookingRepo.BookingRepository = (*BookingRepo)(nil)
	_ userRepo.UserRepository       = (*UserRepo)(nil)
	_ doctorRepo.DoctorRepository   = (*DoctorRepo)(nil)
	_ paymentRepo.PaymentRepository = (*PaymentRepo)(nil)
)

func cloneSlots(slots []string) []string {
	if slots == nil {
		return nil
	}
	return append([]string(nil), slots...)
}

// ServiceRepo is an in-memory treatment catalog.
type ServiceRepo struct {
	mu       sync.RWMutex
	services []models.Service
}

// NewServiceRepo creates a catalog seeded with the given services.
func NewServiceRepo(services ...models.Service) *ServiceRepo {
	r := &ServiceRepo{}
	for _, s := range services {
		if s.ID.IsZero() {
			s.ID = primitive.NewObjectID()
		}
		s.Slots = cloneSlots(s.Slots)
		r.services = append(r.services, s)
	}
	return r
}

func (r *ServiceRepo) GetAll(_ context.Context) ([]models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Service, 0, len(r.services))
	for _, s := range r.services {
		s.Slots = cloneSlots(s.Slots)
		out = append(out, s)
	}
	return out, nil
}

func (r *ServiceRepo) GetNames(_ context.Context) ([]models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Service, 0, len(r.services))
	for _, s := range r.services {
		out = append(out, models.Service{ID: s.ID, Name: s.Name})
	}
	return out, nil
}

// BookingRepo is an in-memory booking collection that enforces the dedupe key
// the same way the unique Mongo index does.
type BookingRepo struct {
	mu       sync.RWMutex
	bookings []models.Booking
}

func NewBookingRepo() *BookingRepo {
	return &BookingRepo{}
}

func (r *BookingRepo) filter(match func(models.Booking) bool) []models.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Booking{}
	for _, b := range r.bookings {
		if match(b) {
			out = append(out, b)
		}
	}
	return out
}

func (r *BookingRepo) GetByPatient(_ context.Context, email string) ([]models.Booking, error) {
	return r.filter(func(b models.Booking) bool { return b.PatientEmail == email }), nil
}

func (r *BookingRepo) GetByDate(_ context.Context, date string) ([]models.Booking, error) {
	return r.filter(func(b models.Booking) bool { return b.Date == date }), nil
}

func (r *BookingRepo) GetByKey(_ context.Context, key models.BookingKey) (*models.Booking, error) {
	found := r.filter(func(b models.Booking) bool { return b.Key() == key })
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

func (r *BookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	oid, err := database.ParseID(id)
	if err != nil {
		return nil, err
	}
	found := r.filter(func(b models.Booking) bool { return b.ID == oid })
	if len(found) == 0 {
		return nil, fmt.Errorf("booking %s: %w", id, database.ErrNotFound)
	}
	return &found[0], nil
}

func (r *BookingRepo) Create(_ context.Context, booking *models.Booking) (models.InsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.bookings {
		if b.Key() == booking.Key() {
			return models.InsertResult{}, fmt.Errorf("booking: %w", database.ErrDuplicate)
		}
	}
	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	r.bookings = append(r.bookings, *booking)
	return models.InsertResult{Acknowledged: true, InsertedID: booking.ID.Hex()}, nil
}

func (r *BookingRepo) MarkPaid(_ context.Context, id string, transactionID string) (models.UpdateResult, error) {
	oid, err := database.ParseID(id)
	if err != nil {
		return models.UpdateResult{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.bookings {
		if r.bookings[i].ID != oid {
			continue
		}
		modified := int64(0)
		if !r.bookings[i].Paid || r.bookings[i].TransactionID != transactionID {
			modified = 1
		}
		r.bookings[i].Paid = true
		r.bookings[i].TransactionID = transactionID
		return models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
	}
	return models.UpdateResult{}, fmt.Errorf("booking %s: %w", id, database.ErrNotFound)
}

// Len reports how many bookings are stored.
func (r *BookingRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bookings)
}

// UserRepo is an in-memory user collection keyed by email.
type UserRepo struct {
	mu    sync.RWMutex
	users map[string]models.User
	order []string
}

func NewUserRepo(users ...models.User) *UserRepo {
	r := &UserRepo{users: make(map[string]models.User)}
	for _, u := range users {
		if u.ID.IsZero() {
			u.ID = primitive.NewObjectID()
		}
		r.users[u.Email] = u
		r.order = append(r.order, u.Email)
	}
	return r
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) GetAll(_ context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.User, 0, len(r.order))
	for _, email := range r.order {
		out = append(out, r.users[email])
	}
	return out, nil
}

func (r *UserRepo) UpsertByEmail(_ context.Context, email string, profile models.UserProfile) (models.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[email]
	if !ok {
		r.users[email] = models.User{ID: primitive.NewObjectID(), Email: email, Name: profile.Name}
		r.order = append(r.order, email)
		return models.UpdateResult{Acknowledged: true, UpsertedCount: 1}, nil
	}

	modified := int64(0)
	if profile.Name != "" && profile.Name != u.Name {
		u.Name = profile.Name
		r.users[email] = u
		modified = 1
	}
	return models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
}

func (r *UserRepo) SetRole(_ context.Context, email, role string) (models.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[email]
	if !ok {
		return models.UpdateResult{Acknowledged: true}, nil
	}
	modified := int64(0)
	if u.Role != role {
		u.Role = role
		r.users[email] = u
		modified = 1
	}
	return models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
}

// DoctorRepo is an in-memory doctor collection.
type DoctorRepo struct {
	mu      sync.RWMutex
	doctors []models.Doctor
}

func NewDoctorRepo(doctors ...models.Doctor) *DoctorRepo {
	return &DoctorRepo{doctors: append([]models.Doctor(nil), doctors...)}
}

func (r *DoctorRepo) GetAll(_ context.Context) ([]models.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Doctor{}, r.doctors...), nil
}

func (r *DoctorRepo) GetByEmail(_ context.Context, email string) (*models.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.doctors {
		if d.Email == email {
			return &d, nil
		}
	}
	return nil, nil
}

func (r *DoctorRepo) Create(_ context.Context, doctor *models.Doctor) (models.InsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if doctor.ID.IsZero() {
		doctor.ID = primitive.NewObjectID()
	}
	r.doctors = append(r.doctors, *doctor)
	return models.InsertResult{Acknowledged: true, InsertedID: doctor.ID.Hex()}, nil
}

func (r *DoctorRepo) DeleteByEmail(_ context.Context, email string) (models.DeleteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, d := range r.doctors {
		if d.Email == email {
			r.doctors = append(r.doctors[:i], r.doctors[i+1:]...)
			return models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return models.DeleteResult{Acknowledged: true}, nil
}

// PaymentRepo is an in-memory payment ledger.
type PaymentRepo struct {
	mu       sync.RWMutex
	payments []models.Payment
}

func NewPaymentRepo() *PaymentRepo {
	return &PaymentRepo{}
}

func (r *PaymentRepo) Create(_ context.Context, payment *models.Payment) (models.InsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = time.Now()
	}
	r.payments = append(r.payments, *payment)
	return models.InsertResult{Acknowledged: true, InsertedID: payment.ID.Hex()}, nil
}

// All returns a copy of the recorded payments.
func (r *PaymentRepo) All() []models.Payment {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Payment{}, r.payments...)
}
