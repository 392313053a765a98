package doctorRepo

import (
	"context"

	"doctorsportal/models"
)

// DoctorRepository defines methods for doctor data access.
type DoctorRepository interface {
	GetAll(ctx context.Context) ([]models.Doctor, error)
	// GetByEmail retrieves a doctor by email, or nil if none exists.
	GetByEmail(ctx context.Context, email string) (*models.Doctor, error)
	Create(ctx context.Context, doctor *models.Doctor) (models.InsertResult, error)
	DeleteByEmail(ctx context.Context, email string) (models.DeleteResult, error)
}
