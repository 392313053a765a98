package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records a completed gateway charge against a booking.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	PaymentID     string             `bson:"paymentId" json:"paymentId"`
	BookingID     string             `bson:"booking" json:"booking"`
	TransactionID string             `bson:"transactionId" json:"transactionId" binding:"required"`
	PatientEmail  string             `bson:"patientEmail,omitempty" json:"patientEmail,omitempty"`
	Amount        float64            `bson:"amount,omitempty" json:"amount,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// PaymentIntentRequest is the body of a payment-intent creation call.
type PaymentIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

// PaymentIntentResponse carries the client secret back to the browser.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
