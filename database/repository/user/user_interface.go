package userRepo

import (
	"context"

	"doctorsportal/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByEmail retrieves a user by email, or nil if none exists.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll(ctx context.Context) ([]models.User, error)
	// UpsertByEmail creates or updates the profile of the user with the given email.
	UpsertByEmail(ctx context.Context, email string, profile models.UserProfile) (models.UpdateResult, error)
	// SetRole assigns a role to the user with the given email.
	SetRole(ctx context.Context, email, role string) (models.UpdateResult, error)
}
