package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking is a patient's reservation of one slot of one service on one date.
type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	TreatmentID   string             `bson:"treatmentId,omitempty" json:"treatmentId,omitempty"`
	TreatmentName string             `bson:"treatmentName" json:"treatmentName" binding:"required"`
	Date          string             `bson:"date" json:"date" binding:"required"`
	TimeSlot      string             `bson:"timeSlot" json:"timeSlot" binding:"required"`
	PatientEmail  string             `bson:"patientEmail" json:"patientEmail" binding:"required"`
	PatientName   string             `bson:"patientName,omitempty" json:"patientName,omitempty"`
	Phone         string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Price         float64            `bson:"price,omitempty" json:"price,omitempty"`
	Paid          bool               `bson:"paid,omitempty" json:"paid,omitempty"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
}

// BookingKey is the (treatment, patient, date) triple at most one booking may hold.
type BookingKey struct {
	TreatmentName string
	PatientEmail  string
	Date          string
}

// Key returns the deduplication key of the booking.
func (b Booking) Key() BookingKey {
	return BookingKey{TreatmentName: b.TreatmentName, PatientEmail: b.PatientEmail, Date: b.Date}
}

// InsertResult mirrors the document store's insert acknowledgement.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// UpdateResult mirrors the document store's update acknowledgement.
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedCount int64 `json:"upsertedCount"`
}

// DeleteResult mirrors the document store's delete acknowledgement.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
