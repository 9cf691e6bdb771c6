package adapter

import (
	"context"
	"log/slog"
	"time"

	"github.com/casaflow/underwriting-service/internal/domain/model"
	"github.com/casaflow/underwriting-service/internal/domain/port"
)

// Compile-time interface check.
var _ port.CreditRiskClient = (*CachedCreditRiskClient)(nil)

// CachedCreditRiskClient decorates a credit-risk client with a read-through
// cache. Only successful assessments are cached; cache failures degrade to a
// live call and are logged, never surfaced.
type CachedCreditRiskClient struct {
	inner  port.CreditRiskClient
	cache  port.AssessmentCache
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedCreditRiskClient wraps inner with the given cache.
func NewCachedCreditRiskClient(
	inner port.CreditRiskClient,
	cache port.AssessmentCache,
	ttl time.Duration,
	logger *slog.Logger,
) *CachedCreditRiskClient {
	return &CachedCreditRiskClient{
		inner:  inner,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// Assess returns the cached assessment for the application when present,
// otherwise calls through and caches a successful result.
func (c *CachedCreditRiskClient) Assess(ctx context.Context, app model.Application) (model.CreditRiskResult, error) {
	cached, ok, err := c.cache.Get(ctx, app.ID())
	if err != nil {
		c.logger.Warn("assessment cache read failed",
			"application_id", app.ID(),
			"error", err,
		)
	} else if ok {
		return cached, nil
	}

	result, err := c.inner.Assess(ctx, app)
	if err != nil {
		return model.CreditRiskResult{}, err
	}

	if result.Success {
		if err := c.cache.Set(ctx, app.ID(), result, c.ttl); err != nil {
			c.logger.Warn("assessment cache write failed",
				"application_id", app.ID(),
				"error", err,
			)
		}
	}
	return result, nil
}
