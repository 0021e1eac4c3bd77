package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"

	"mockflow_backend/internal/feature/candles/domain/entity"
	"mockflow_backend/internal/feature/candles/usecase"
)

// mockSeriesSource はテスト用のSeriesSourceモック実装です。
type mockSeriesSource struct {
	getSeriesFn func(ctx context.Context, p usecase.GenerateParams) ([]entity.Candle, error)
	calls       int
}

// GetSeries はモックのGetSeries関数を呼び出します。
func (m *mockSeriesSource) GetSeries(ctx context.Context, p usecase.GenerateParams) ([]entity.Candle, error) {
	m.calls++
	if m.getSeriesFn != nil {
		return m.getSeriesFn(ctx, p)
	}
	return nil, nil
}

// TestNewCachingSeriesSource_Defaults はデフォルト値（TTLとnamespace）が正しく設定されることを検証します。
func TestNewCachingSeriesSource_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		ttl               time.Duration
		namespace         string
		expectedTTL       time.Duration
		expectedNamespace string
	}{
		{
			name:              "default values when zero/empty",
			ttl:               0,
			namespace:         "",
			expectedTTL:       5 * time.Minute,
			expectedNamespace: "series",
		},
		{
			name:              "negative ttl uses default",
			ttl:               -1 * time.Minute,
			namespace:         "",
			expectedTTL:       5 * time.Minute,
			expectedNamespace: "series",
		},
		{
			name:              "custom values preserved",
			ttl:               10 * time.Minute,
			namespace:         "custom",
			expectedTTL:       10 * time.Minute,
			expectedNamespace: "custom",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := NewCachingSeriesSource(nil, tt.ttl, &mockSeriesSource{}, tt.namespace)

			if src.ttl != tt.expectedTTL {
				t.Errorf("expected TTL %v, got %v", tt.expectedTTL, src.ttl)
			}
			if src.namespace != tt.expectedNamespace {
				t.Errorf("expected namespace %q, got %q", tt.expectedNamespace, src.namespace)
			}
		})
	}
}

// TestCachingSeriesSource_GetSeries_NilRedis はRedisがnilの場合にキャッシュをバイパスして内部ソースを直接呼び出すことを検証します。
func TestCachingSeriesSource_GetSeries_NilRedis(t *testing.T) {
	t.Parallel()

	expected := []entity.Candle{
		{Symbol: "BTC", Interval: "1h", Open: 50000, Close: 50100},
	}

	inner := &mockSeriesSource{
		getSeriesFn: func(ctx context.Context, p usecase.GenerateParams) ([]entity.Candle, error) {
			return expected, nil
		},
	}

	// Redis is nil - should bypass cache and call inner directly
	src := NewCachingSeriesSource(nil, 5*time.Minute, inner, "series")

	candles, err := src.GetSeries(context.Background(), usecase.GenerateParams{Symbol: "BTC", Timeframe: "1h"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candles) != len(expected) {
		t.Errorf("expected %d candles, got %d", len(expected), len(candles))
	}
	if inner.calls != 1 {
		t.Errorf("expected 1 inner call, got %d", inner.calls)
	}
}

// TestCachingSeriesSource_GetSeries_CacheHit はキャッシュヒット時にRedisから系列を返し、内部ソースを呼ばないことを検証します。
func TestCachingSeriesSource_GetSeries_CacheHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	cached := []entity.Candle{
		{Symbol: "BTC", Interval: "1h", Open: 50000, Close: 50100},
	}
	cachedJSON, _ := json.Marshal(cached)

	mock.ExpectGet("series:BTC:1h:bull:100:0:0:-:-").SetVal(string(cachedJSON))

	inner := &mockSeriesSource{}

	src := NewCachingSeriesSource(rdb, 5*time.Minute, inner, "series")
	candles, err := src.GetSeries(context.Background(), usecase.GenerateParams{
		Symbol:    "BTC",
		Timeframe: "1h",
		Scenario:  "bull",
		Limit:     100,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner.calls != 0 {
		t.Error("inner source should not be called on cache hit")
	}
	if len(candles) != 1 {
		t.Errorf("expected 1 candle, got %d", len(candles))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingSeriesSource_GetSeries_CacheMiss はキャッシュミス時に系列を生成し、キャッシュに保存することを検証します。
func TestCachingSeriesSource_GetSeries_CacheMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expected := []entity.Candle{
		{Symbol: "BTC", Interval: "1h", Open: 50000, Close: 50100},
	}
	expectedJSON, _ := json.Marshal(expected)

	// Cache miss
	mock.ExpectGet("series:BTC:1h:bull:100:0:0:-:-").RedisNil()
	// Set cache after generating
	mock.ExpectSet("series:BTC:1h:bull:100:0:0:-:-", expectedJSON, 5*time.Minute).SetVal("OK")

	inner := &mockSeriesSource{
		getSeriesFn: func(ctx context.Context, p usecase.GenerateParams) ([]entity.Candle, error) {
			return expected, nil
		},
	}

	src := NewCachingSeriesSource(rdb, 5*time.Minute, inner, "series")
	candles, err := src.GetSeries(context.Background(), usecase.GenerateParams{
		Symbol:    "BTC",
		Timeframe: "1h",
		Scenario:  "bull",
		Limit:     100,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candles) != 1 {
		t.Errorf("expected 1 candle, got %d", len(candles))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingSeriesSource_GetSeries_InnerError は内部ソースのエラーが伝播され、キャッシュ保存されないことを検証します。
func TestCachingSeriesSource_GetSeries_InnerError(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedErr := errors.New("generation error")

	mock.ExpectGet("series:BTC:1h::0:0:0:-:-").RedisNil()

	inner := &mockSeriesSource{
		getSeriesFn: func(ctx context.Context, p usecase.GenerateParams) ([]entity.Candle, error) {
			return nil, expectedErr
		},
	}

	src := NewCachingSeriesSource(rdb, 5*time.Minute, inner, "series")
	_, err := src.GetSeries(context.Background(), usecase.GenerateParams{Symbol: "BTC", Timeframe: "1h"})

	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
}

// TestCachingSeriesSource_CacheKey はパラメータの違いが必ず別のキーに写像されることを検証します。
func TestCachingSeriesSource_CacheKey(t *testing.T) {
	t.Parallel()

	src := NewCachingSeriesSource(nil, 0, &mockSeriesSource{}, "")
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	base := usecase.GenerateParams{Symbol: "BTC", Timeframe: "1h", Scenario: "bull", Limit: 100}

	variants := []usecase.GenerateParams{
		{Symbol: "ETH", Timeframe: "1h", Scenario: "bull", Limit: 100},
		{Symbol: "BTC", Timeframe: "1d", Scenario: "bull", Limit: 100},
		{Symbol: "BTC", Timeframe: "1h", Scenario: "bear", Limit: 100},
		{Symbol: "BTC", Timeframe: "1h", Scenario: "bull", Limit: 200},
		{Symbol: "BTC", Timeframe: "1h", Scenario: "bull", Limit: 100, Days: 7},
		{Symbol: "BTC", Timeframe: "1h", Scenario: "bull", Limit: 100, BasePrice: 3000},
		{Symbol: "BTC", Timeframe: "1h", Scenario: "bull", Limit: 100, Start: &start, End: &end},
	}

	baseKey := src.cacheKey(base)
	seen := map[string]bool{baseKey: true}
	for i, v := range variants {
		key := src.cacheKey(v)
		if seen[key] {
			t.Errorf("variant %d produced duplicate cache key %q", i, key)
		}
		seen[key] = true
	}
}
