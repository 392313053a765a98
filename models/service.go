package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Service is a treatment offering with a fixed list of bookable time slots.
type Service struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Slots []string           `bson:"slots,omitempty" json:"slots,omitempty"`
	Price float64            `bson:"price,omitempty" json:"price,omitempty"`
}

// AvailableService is a Service whose slots were narrowed to the ones still
// open on a given date. Slots is always serialised, even when empty.
type AvailableService struct {
	ID    primitive.ObjectID `json:"_id,omitempty"`
	Name  string             `json:"name"`
	Slots []string           `json:"slots"`
	Price float64            `json:"price,omitempty"`
}
