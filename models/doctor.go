package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Doctor is a practitioner managed by admins.
type Doctor struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name" binding:"required"`
	Email     string             `bson:"email" json:"email" binding:"required,email"`
	Specialty string             `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Img       string             `bson:"img,omitempty" json:"img,omitempty"`
}
