package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/domain"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const snapshotKey = "map:snapshot:current"

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

// GetSnapshot получает снапшот карты из кеша (nil при промахе).
// Используется при холодном старте, пока upstream не опрошен.
func (r *cacheRepository) GetSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	data, err := r.Get(ctx, snapshotKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		r.logger.Error("Failed to unmarshal snapshot from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}

	return &snap, nil
}

// SetSnapshot сохраняет снапшот карты в кеше
func (r *cacheRepository) SetSnapshot(ctx context.Context, snap *domain.Snapshot, ttl time.Duration) error {
	data, err := json.Marshal(snap)
	if err != nil {
		r.logger.Error("Failed to marshal snapshot", zap.Error(err))
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	return r.Set(ctx, snapshotKey, data, ttl)
}
