// Package di provides dependency injection factories for creating application components.
package di

import (
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"mockflow_backend/internal/feature/candles/engine"
	"mockflow_backend/internal/feature/candles/usecase"
	"mockflow_backend/internal/platform/cache"
)

// NewSeriesSource creates the generation pipeline: engine → usecase,
// optionally wrapped with Redis caching when a client is available.
func NewSeriesSource(rdb *redisv9.Client) usecase.SeriesSource {
	gen := usecase.NewGenerateUsecase(engine.New())
	if rdb == nil {
		return gen
	}
	return cache.NewCachingSeriesSource(rdb, cacheTTL(), gen, "series")
}

// cacheTTL reads SERIES_CACHE_TTL (e.g. "10m"); zero lets the cache
// package apply its default.
func cacheTTL() time.Duration {
	if v := os.Getenv("SERIES_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return 0
}
