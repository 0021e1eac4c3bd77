package main

import (
	"context"
	"log"
	"time"

	"mockflow_backend/internal/app/di"
	candleadapters "mockflow_backend/internal/feature/candles/adapters"
	"mockflow_backend/internal/feature/candles/usecase"
	catalogadapters "mockflow_backend/internal/feature/catalog/adapters"
	infradb "mockflow_backend/internal/platform/db"
	"mockflow_backend/internal/shared/ratelimiter"
)

func main() {
	db := infradb.OpenDB()

	series := di.NewSeriesSource(nil) // 一括生成ではキャッシュ不要
	candleRepo := candleadapters.NewCandleRepository(db)
	symbolRepo := catalogadapters.NewSymbolRepository(db)
	limiter := ratelimiter.NewRateLimiter(30, time.Minute)
	uc := usecase.NewSnapshotUsecase(series, candleRepo, limiter)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	symbols, err := symbolRepo.ListActive(ctx)
	if err != nil {
		log.Fatal("failed to load symbols:", err)
	}

	targets := make([]usecase.SnapshotTarget, 0, len(symbols))
	for _, s := range symbols {
		targets = append(targets, usecase.SnapshotTarget{
			Symbol:    s.Code,
			Scenario:  s.Scenario,
			BasePrice: s.BasePrice,
		})
	}

	if err := uc.SnapshotAll(ctx, targets); err != nil {
		log.Fatal(err)
	}
	log.Println("snapshot ok")
}
