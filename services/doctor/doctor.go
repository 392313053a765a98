package doctor

import (
	"context"

	"doctorsportal/database/repository"
	"doctorsportal/models"

	"go.uber.org/zap"
)

type DoctorService interface {
	GetAllDoctors(ctx context.Context) ([]models.Doctor, error)
	AddDoctor(ctx context.Context, doctor *models.Doctor) (*AddResult, error)
	DeleteDoctor(ctx context.Context, email string) (models.DeleteResult, error)
}

// AddResult reports whether a doctor was inserted or an existing one blocked it.
type AddResult struct {
	Success  bool
	Result   models.InsertResult
	Existing *models.Doctor
}

type DefaultDoctorService struct {
	Store  *repository.Store
	Logger *zap.Logger
}

func NewDoctorService(store *repository.Store, logger *zap.Logger) *DefaultDoctorService {
	return &DefaultDoctorService{Store: store, Logger: logger}
}

func (s *DefaultDoctorService) GetAllDoctors(ctx context.Context) ([]models.Doctor, error) {
	return s.Store.Doctors.GetAll(ctx)
}

// AddDoctor inserts the doctor unless one with the same email already exists.
func (s *DefaultDoctorService) AddDoctor(ctx context.Context, doctor *models.Doctor) (*AddResult, error) {
	existing, err := s.Store.Doctors.GetByEmail(ctx, doctor.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &AddResult{Success: false, Existing: existing}, nil
	}

	result, err := s.Store.Doctors.Create(ctx, doctor)
	if err != nil {
		return nil, err
	}
	s.Logger.Info("doctor added", zap.String("email", doctor.Email))
	return &AddResult{Success: true, Result: result}, nil
}

func (s *DefaultDoctorService) DeleteDoctor(ctx context.Context, email string) (models.DeleteResult, error) {
	result, err := s.Store.Doctors.DeleteByEmail(ctx, email)
	if err != nil {
		return models.DeleteResult{}, err
	}
	s.Logger.Info("doctor removed", zap.String("email", email), zap.Int64("deleted", result.DeletedCount))
	return result, nil
}
