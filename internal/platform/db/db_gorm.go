// Package db provides the gorm database bootstrap.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	candleadapters "mockflow_backend/internal/feature/candles/adapters"
	catalogentity "mockflow_backend/internal/feature/catalog/domain/entity"
)

// defaultSQLitePath はDATABASE_URL未設定時に使うローカルファイルです。
const defaultSQLitePath = "mockflow.db"

// connectTimeout はPostgreSQLコンテナの起動待ちに使う接続リトライの上限時間です。
const connectTimeout = 60 * time.Second

// Opener opens a gorm connection for the given DSN.
type Opener func(dsn string) (*gorm.DB, error)

// ConnectWithRetry は接続が成功するかタイムアウトするまでopenerを繰り返し呼び出します。
// 起動直後はDBコンテナがまだ受け付けないことがあるためリトライします。
func ConnectWithRetry(dsn string, timeout time.Duration, opener Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %v: %w", timeout, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}
}

// Migrate はスナップショットとカタログのテーブルを作成・更新します。
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&candleadapters.CandleModel{},
		&catalogentity.Symbol{},
	)
}

// OpenDB はデータベース接続を開きます。
// DATABASE_URL（postgres DSN）があればPostgreSQLへ、なければローカルのSQLiteへ接続します。
// RUN_MIGRATIONS=true の場合はマイグレーションを実行します。
func OpenDB() *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err = ConnectWithRetry(dsn, connectTimeout, func(dsn string) (*gorm.DB, error) {
			return gorm.Open(postgres.Open(dsn), &gorm.Config{})
		})
		if err != nil {
			log.Fatalf("failed to connect to postgres: %v", err)
		}
	} else {
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = defaultSQLitePath
		}
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to open sqlite db: %v", err)
		}
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := Migrate(db); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
