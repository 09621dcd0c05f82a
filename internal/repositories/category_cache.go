package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmkaawya/kedu-api/internal/logger"
	"github.com/dmkaawya/kedu-api/internal/models"
	"github.com/redis/go-redis/v9"
)

// categoriesCacheKey holds the full category aggregate as one JSON
// value; mutations delete the key.
const categoriesCacheKey = "catalog:categories"

// CategoryCacheRepository caches the category list in Redis.
type CategoryCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for the cached aggregate
}

// NewCategoryCacheRepository creates a cache repository with the given TTL.
func NewCategoryCacheRepository(client *redis.Client, expiration time.Duration) *CategoryCacheRepository {
	return &CategoryCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get returns the cached category list. A cache miss is an error; the
// caller falls back to the store.
func (r *CategoryCacheRepository) Get(ctx context.Context) ([]models.Category, error) {
	val, err := r.client.Get(ctx, categoriesCacheKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("categories not found in cache")
		}
		logger.Log.Errorw("cache get failed", "key", categoriesCacheKey, "error", err)
		return nil, err
	}

	var categories []models.Category
	if err := json.Unmarshal([]byte(val), &categories); err != nil {
		logger.Log.Errorw("cache value unmarshal failed", "key", categoriesCacheKey, "error", err)
		return nil, err
	}

	logger.Log.Infow("cache hit", "key", categoriesCacheKey, "count", len(categories))
	return categories, nil
}

// Set stores the category list with the configured expiration.
func (r *CategoryCacheRepository) Set(ctx context.Context, categories []models.Category) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, categoriesCacheKey, data, r.exp).Err()

	logger.Log.Infow("cache set",
		"key", categoriesCacheKey,
		"count", len(categories),
		"error", err,
	)

	return err
}

// Invalidate drops the cached list after a mutation.
func (r *CategoryCacheRepository) Invalidate(ctx context.Context) error {
	err := r.client.Del(ctx, categoriesCacheKey).Err()

	logger.Log.Infow("cache invalidated", "key", categoriesCacheKey, "error", err)

	return err
}
