package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/database"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a BookingRepository backed by the "bookings" collection.
// Index creation failures are logged; the dedupe pre-check still runs without them.
func NewMongoBookingRepo(ctx context.Context, db *mongo.Database, logger *zap.Logger) BookingRepository {
	repo := &MongoBookingRepo{coll: db.Collection("bookings")}
	if err := repo.ensureIndexes(ctx); err != nil {
		logger.Warn("booking indexes not ensured", zap.Error(err))
	}
	return repo
}

func (r *MongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := database.NewContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// GetByPatient retrieves bookings by patient email.
func (r *MongoBookingRepo) GetByPatient(ctx context.Context, email string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"patientEmail": email})
}

// GetByDate retrieves bookings whose date label matches exactly.
func (r *MongoBookingRepo) GetByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"date": date})
}

// GetByKey retrieves the booking matching the dedupe triple.
func (r *MongoBookingRepo) GetByKey(ctx context.Context, key models.BookingKey) (*models.Booking, error) {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"treatmentName": key.TreatmentName,
		"patientEmail":  key.PatientEmail,
		"date":          key.Date,
	}
	var booking models.Booking
	if err := r.coll.FindOne(ctx, filter).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	return &booking, nil
}

// GetByID retrieves a booking by its ObjectID hex string.
func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	oid, err := database.ParseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("booking %s: %w", id, database.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) (models.InsertResult, error) {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.InsertResult{}, fmt.Errorf("booking: %w", database.ErrDuplicate)
		}
		return models.InsertResult{}, fmt.Errorf("failed to create booking: %w", err)
	}
	return models.InsertResult{Acknowledged: true, InsertedID: booking.ID.Hex()}, nil
}

// MarkPaid flags the booking as paid and records the gateway transaction id.
func (r *MongoBookingRepo) MarkPaid(ctx context.Context, id string, transactionID string) (models.UpdateResult, error) {
	oid, err := database.ParseID(id)
	if err != nil {
		return models.UpdateResult{}, err
	}

	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"paid": true, "transactionId": transactionID}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("failed to update booking with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return models.UpdateResult{}, fmt.Errorf("booking %s: %w", id, database.ErrNotFound)
	}
	return models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}
