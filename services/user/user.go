package user

import (
	"context"
	"errors"
	"fmt"

	"doctorsportal/models"

	"go.uber.org/zap"
)

// ErrEmailRequired is returned when an operation needs an email and got none.
var ErrEmailRequired = errors.New("email is required")

func (s *DefaultUserService) UpsertUser(ctx context.Context, email string, profile models.UserProfile) (*UpsertResponse, error) {
	if email == "" {
		return nil, ErrEmailRequired
	}

	result, err := s.Store.Users.UpsertByEmail(ctx, email, profile)
	if err != nil {
		return nil, err
	}

	token, err := s.Tokens.GenerateToken(email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token for %s: %w", email, err)
	}

	s.Logger.Info("user upserted", zap.String("email", email), zap.Int64("upserted", result.UpsertedCount))
	return &UpsertResponse{Result: result, Token: token}, nil
}

func (s *DefaultUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.Store.Users.GetAll(ctx)
}

func (s *DefaultUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.Store.Users.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user != nil && user.IsAdmin(), nil
}

func (s *DefaultUserService) MakeAdmin(ctx context.Context, email string) (models.UpdateResult, error) {
	if email == "" {
		return models.UpdateResult{}, ErrEmailRequired
	}
	result, err := s.Store.Users.SetRole(ctx, email, models.RoleAdmin)
	if err != nil {
		return models.UpdateResult{}, err
	}
	s.Logger.Info("admin role granted", zap.String("email", email), zap.Int64("matched", result.MatchedCount))
	return result, nil
}
