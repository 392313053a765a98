package serviceRepo

import (
	"context"

	"doctorsportal/models"
)

// ServiceRepository defines read access to the treatment catalog.
type ServiceRepository interface {
	// GetAll retrieves every service with its full slot list.
	GetAll(ctx context.Context) ([]models.Service, error)
	// GetNames retrieves every service projected down to its name.
	GetNames(ctx context.Context) ([]models.Service, error)
}
