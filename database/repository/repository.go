package repository

import (
	"context"

	bookingRepo "doctorsportal/database/repository/booking"
	doctorRepo "doctorsportal/database/repository/doctor"
	"doctorsportal/database/repository/memstore"
	paymentRepo "doctorsportal/database/repository/payment"
	serviceRepo "doctorsportal/database/repository/service"
	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Store is the storage context: one repository per collection, built once at
// startup and handed to every service that needs persistence.
type Store struct {
	Services serviceRepo.ServiceRepository
	Bookings bookingRepo.BookingRepository
	Users    userRepo.UserRepository
	Doctors  doctorRepo.DoctorRepository
	Payments paymentRepo.PaymentRepository
}

// NewMongoStore builds a Store over the named MongoDB database.
func NewMongoStore(ctx context.Context, client *mongo.Client, dbName string, logger *zap.Logger) *Store {
	db := client.Database(dbName)
	return &Store{
		Services: serviceRepo.NewMongoServiceRepo(db),
		Bookings: bookingRepo.NewMongoBookingRepo(ctx, db, logger),
		Users:    userRepo.NewMongoUserRepo(ctx, db, logger),
		Doctors:  doctorRepo.NewMongoDoctorRepo(db),
		Payments: paymentRepo.NewMongoPaymentRepo(db),
	}
}

// NewMemoryStore builds a Store whose repositories live in process memory,
// with the catalog seeded from services.
func NewMemoryStore(services ...models.Service) *Store {
	return &Store{
		Services: memstore.NewServiceRepo(services...),
		Bookings: memstore.NewBookingRepo(),
		Users:    memstore.NewUserRepo(),
		Doctors:  memstore.NewDoctorRepo(),
		Payments: memstore.NewPaymentRepo(),
	}
}
