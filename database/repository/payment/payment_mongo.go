package paymentRepo

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/database"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoPaymentRepo implements PaymentRepository using MongoDB.
type MongoPaymentRepo struct {
	coll *mongo.Collection
}

func NewMongoPaymentRepo(db *mongo.Database) PaymentRepository {
	return &MongoPaymentRepo{coll: db.Collection("payments")}
}

// Create inserts a payment document.
func (r *MongoPaymentRepo) Create(ctx context.Context, payment *models.Payment) (models.InsertResult, error) {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, payment); err != nil {
		return models.InsertResult{}, fmt.Errorf("failed to create payment: %w", err)
	}
	return models.InsertResult{Acknowledged: true, InsertedID: payment.ID.Hex()}, nil
}
