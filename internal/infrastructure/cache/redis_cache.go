package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/casaflow/underwriting-service/internal/domain/model"
	"github.com/casaflow/underwriting-service/internal/domain/port"
)

// Compile-time interface check.
var _ port.AssessmentCache = (*RedisAssessmentCache)(nil)

// Redis key prefix for cached assessments.
const assessmentKeyPrefix = "underwriting:assessment:"

// RedisAssessmentCache stores credit-risk results in Redis keyed by
// application ID, JSON-encoded with a TTL. The client lifecycle is managed
// by the caller.
type RedisAssessmentCache struct {
	client *redis.Client
}

// NewRedisAssessmentCache constructs a Redis-backed assessment cache.
func NewRedisAssessmentCache(client *redis.Client) *RedisAssessmentCache {
	return &RedisAssessmentCache{client: client}
}

// Get returns the cached result for the application. A missing or expired
// key is a miss, not an error.
func (c *RedisAssessmentCache) Get(ctx context.Context, applicationID uuid.UUID) (model.CreditRiskResult, bool, error) {
	raw, err := c.client.Get(ctx, assessmentKeyPrefix+applicationID.String()).Result()
	if errors.Is(err, redis.Nil) {
		return model.CreditRiskResult{}, false, nil
	}
	if err != nil {
		return model.CreditRiskResult{}, false, fmt.Errorf("redis get: %w", err)
	}

	var result model.CreditRiskResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return model.CreditRiskResult{}, false, fmt.Errorf("decode cached assessment: %w", err)
	}
	return result, true, nil
}

// Set stores the result for the application with the given TTL.
func (c *RedisAssessmentCache) Set(ctx context.Context, applicationID uuid.UUID, result model.CreditRiskResult, ttl time.Duration) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode assessment: %w", err)
	}
	if err := c.client.Set(ctx, assessmentKeyPrefix+applicationID.String(), raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
