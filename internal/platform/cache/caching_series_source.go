// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"mockflow_backend/internal/feature/candles/domain/entity"
	"mockflow_backend/internal/feature/candles/usecase"
)

// DefaultTTL is applied when no TTL is configured.
const DefaultTTL = 5 * time.Minute

// CachingSeriesSource decorates a SeriesSource with Redis caching.
// Generation is deterministic per parameter set, so a cached series is
// always identical to a regenerated one; the cache only saves CPU.
type CachingSeriesSource struct {
	inner     usecase.SeriesSource
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.SeriesSource = (*CachingSeriesSource)(nil)

// NewCachingSeriesSource decorates a SeriesSource with Redis caching.
// If ttl is 0, it defaults to DefaultTTL. If namespace is empty, it uses "series".
func NewCachingSeriesSource(rdb *redis.Client, ttl time.Duration, inner usecase.SeriesSource, namespace string) *CachingSeriesSource {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if namespace == "" {
		namespace = "series"
	}
	return &CachingSeriesSource{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// GetSeries returns a generated series, checking cache first then falling
// back to the inner source. Cache writes are best effort.
func (c *CachingSeriesSource) GetSeries(ctx context.Context, p usecase.GenerateParams) ([]entity.Candle, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.GetSeries(ctx, p)
	}

	key := c.cacheKey(p)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Candle
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Corrupt entry: fall through and regenerate
	}

	// 2) Generate
	out, err := c.inner.GetSeries(ctx, p)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort: a failed write never fails the request)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey encodes the full parameter set; any difference in parameters
// must map to a different key.
func (c *CachingSeriesSource) cacheKey(p usecase.GenerateParams) string {
	start, end := "-", "-"
	if p.Start != nil {
		start = strconv.FormatInt(p.Start.Unix(), 10)
	}
	if p.End != nil {
		end = strconv.FormatInt(p.End.Unix(), 10)
	}
	return fmt.Sprintf("%s:%s:%s:%s:%d:%d:%g:%s:%s",
		c.namespace, p.Symbol, p.Timeframe, p.Scenario, p.Limit, p.Days, p.BasePrice, start, end)
}
