package user

import (
	"context"

	"doctorsportal/database/repository"
	"doctorsportal/models"
	"doctorsportal/utils"

	"go.uber.org/zap"
)

type UserService interface {
	// UpsertUser creates or updates the profile and issues an access token.
	UpsertUser(ctx context.Context, email string, profile models.UserProfile) (*UpsertResponse, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	// MakeAdmin grants the admin role. Callers gate it behind authz.PermAdmin.
	MakeAdmin(ctx context.Context, email string) (models.UpdateResult, error)
}

// UpsertResponse carries the store acknowledgement and the freshly issued token.
type UpsertResponse struct {
	Result models.UpdateResult `json:"result"`
	Token  string              `json:"token"`
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Store  *repository.Store
	Tokens *utils.TokenManager
	Logger *zap.Logger
}

func NewUserService(store *repository.Store, tokens *utils.TokenManager, logger *zap.Logger) *DefaultUserService {
	return &DefaultUserService{Store: store, Tokens: tokens, Logger: logger}
}
