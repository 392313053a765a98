package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     *bool     `json:"mongo,omitempty"`
	Redis     *bool     `json:"redis,omitempty"`
	CheckedAt time.Time `json:"checkedAt"`
}

// Healthy reports whether every configured dependency answered its last ping.
func (s HealthStatus) Healthy() bool {
	return (s.Mongo == nil || *s.Mongo) && (s.Redis == nil || *s.Redis)
}

// HealthMonitor pings the configured backends and keeps the latest snapshot.
// A nil client is treated as not configured and left out of the snapshot.
type HealthMonitor struct {
	mongo  *mongo.Client
	redis  *redis.Client
	logger *zap.Logger

	mu      sync.RWMutex
	current HealthStatus
}

func NewHealthMonitor(mongoClient *mongo.Client, redisClient *redis.Client, logger *zap.Logger) *HealthMonitor {
	return &HealthMonitor{mongo: mongoClient, redis: redisClient, logger: logger}
}

// Status returns latest stored health snapshot.
func (m *HealthMonitor) Status() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Check pings every configured backend once and stores the result.
func (m *HealthMonitor) Check(ctx context.Context) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	status := HealthStatus{CheckedAt: time.Now()}
	if m.mongo != nil {
		ok := m.mongo.Ping(ctx, nil) == nil
		status.Mongo = &ok
	}
	if m.redis != nil {
		ok := m.redis.Ping(ctx).Err() == nil
		status.Redis = &ok
	}
	if !status.Healthy() {
		m.logger.Warn("dependency health check failed", zap.Any("status", status))
	}

	m.mu.Lock()
	m.current = status
	m.mu.Unlock()
	return status
}

// Start performs periodic health checks until ctx is cancelled.
func (m *HealthMonitor) Start(ctx context.Context, interval time.Duration) {
	m.Check(ctx)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Check(ctx)
			}
		}
	}()
}
