package main

import (
	"log"
	"os"

	redisv9 "github.com/redis/go-redis/v9"

	"mockflow_backend/internal/app/di"
	"mockflow_backend/internal/app/router"
	candlehandler "mockflow_backend/internal/feature/candles/transport/handler"
	catalogadapters "mockflow_backend/internal/feature/catalog/adapters"
	cataloghandler "mockflow_backend/internal/feature/catalog/transport/handler"
	catalogusecase "mockflow_backend/internal/feature/catalog/usecase"
	infradb "mockflow_backend/internal/platform/db"
	infraredis "mockflow_backend/internal/platform/redis"
)

func main() {
	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without series cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// 生成パイプライン（エンジン → usecase → Redisキャッシュ）
	series := di.NewSeriesSource(rdb)

	// Repository
	symbolRepo := catalogadapters.NewSymbolRepository(db)

	// Usecase
	symbolUC := catalogusecase.NewSymbolUsecase(symbolRepo)

	// Handler
	tokenH := di.NewTokenHandler()
	candlesH := candlehandler.NewCandlesHandler(series)
	symbolH := cataloghandler.NewSymbolHandler(symbolUC)

	// ルータ生成
	router := router.NewRouter(tokenH, candlesH, symbolH)

	// JWT_SECRETチェック（開発中の注意喚起）
	if os.Getenv("JWT_SECRET") == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	if os.Getenv("MOCKFLOW_API_KEY_HASH") == "" {
		log.Println("[WARN] MOCKFLOW_API_KEY_HASH is not set. Token issuance will fail.")
	}

	addr := ":8080"
	if p := os.Getenv("PORT"); p != "" {
		addr = ":" + p
	}
	if err := router.Run(addr); err != nil {
		log.Fatal(err)
	}
}
