package serviceRepo

import (
	"context"
	"encoding/json"
	"time"

	"doctorsportal/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const catalogCacheKey = "services:all"

// CachedServiceRepo is a read-through Redis cache in front of a ServiceRepository.
// Cache failures are logged and fall through to the wrapped repository.
type CachedServiceRepo struct {
	next   ServiceRepository
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedServiceRepo wraps next with a Redis cache. A nil client disables caching.
func NewCachedServiceRepo(next ServiceRepository, client *redis.Client, ttl time.Duration, logger *zap.Logger) ServiceRepository {
	if client == nil {
		return next
	}
	return &CachedServiceRepo{next: next, client: client, ttl: ttl, logger: logger}
}

// GetAll returns the cached catalog or loads and caches it.
func (r *CachedServiceRepo) GetAll(ctx context.Context) ([]models.Service, error) {
	cached, err := r.client.Get(ctx, catalogCacheKey).Bytes()
	if err == nil {
		var services []models.Service
		if err := json.Unmarshal(cached, &services); err == nil {
			return services, nil
		}
		r.logger.Warn("discarding undecodable service catalog cache entry")
	} else if err != redis.Nil {
		r.logger.Warn("service catalog cache read failed", zap.Error(err))
	}

	services, err := r.next.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(services); err == nil {
		if err := r.client.Set(ctx, catalogCacheKey, data, r.ttl).Err(); err != nil {
			r.logger.Warn("service catalog cache write failed", zap.Error(err))
		}
	}
	return services, nil
}

// GetNames derives the name-only projection from the cached catalog.
func (r *CachedServiceRepo) GetNames(ctx context.Context) ([]models.Service, error) {
	services, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]models.Service, 0, len(services))
	for _, s := range services {
		names = append(names, models.Service{ID: s.ID, Name: s.Name})
	}
	return names, nil
}

