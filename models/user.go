package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const RoleAdmin = "admin"

// User is a patient or staff profile keyed by email.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email string             `bson:"email" json:"email"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}

// UserProfile is the client-supplied part of a user document.
type UserProfile struct {
	Name string `json:"name"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
