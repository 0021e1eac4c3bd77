package usecase

import (
	"context"
	"log/slog"

	"mockflow_backend/internal/feature/candles/domain/entity"
	"mockflow_backend/internal/shared/ratelimiter"
)

// snapshotDays はスナップショット1系列あたりの生成対象日数です。
const snapshotDays = 30

// snapshotIntervals はスナップショット対象の時間足のリストです。
var snapshotIntervals = []string{"1h", "1d", "1w"}

// CandleRepository はロウソク足スナップショットの永続化層を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type CandleRepository interface {
	// UpsertBatch はロウソク足を一括で挿入または更新します。
	UpsertBatch(ctx context.Context, candles []entity.Candle) error
	// Find は保存済みのロウソク足を検索します。
	Find(ctx context.Context, symbol, interval string, outputsize int) ([]entity.Candle, error)
}

// SeriesSource はロウソク足系列の供給元を抽象化します。
type SeriesSource interface {
	GetSeries(ctx context.Context, p GenerateParams) ([]entity.Candle, error)
}

// SnapshotTarget はスナップショット対象の銘柄と生成設定です。
type SnapshotTarget struct {
	Symbol    string  // 銘柄シンボル
	Scenario  string  // シナリオ上書き。空なら auto
	BasePrice float64 // 基準価格の上書き。0ならデフォルト
}

// SnapshotUsecase は合成系列を生成し、データベースに永続化するユースケースです。
// 外部APIからの取り込みと同じ形のパイプラインで、供給元だけが合成エンジンです。
type SnapshotUsecase struct {
	series      SeriesSource
	candle      CandleRepository
	rateLimiter ratelimiter.RateLimiterInterface
}

// NewSnapshotUsecase は新しい SnapshotUsecase を作成します。
func NewSnapshotUsecase(series SeriesSource, candle CandleRepository, rateLimiter ratelimiter.RateLimiterInterface) *SnapshotUsecase {
	return &SnapshotUsecase{series: series, candle: candle, rateLimiter: rateLimiter}
}

// snapshotOne は1銘柄×1時間足の系列を生成してデータベースへ一括保存します。
func (su *SnapshotUsecase) snapshotOne(ctx context.Context, target SnapshotTarget, interval string) error {
	cs, err := su.series.GetSeries(ctx, GenerateParams{
		Symbol:    target.Symbol,
		Timeframe: interval,
		Days:      snapshotDays,
		Scenario:  target.Scenario,
		BasePrice: target.BasePrice,
	})
	if err != nil {
		return err
	}
	return su.candle.UpsertBatch(ctx, cs)
}

// SnapshotAll は指定された全銘柄の系列を複数の時間足で生成し、永続化します。
// 一括アップサートがデータベースを飽和させないよう、書き込みの間に
// レートリミッタによる待機を挟みます。
func (su *SnapshotUsecase) SnapshotAll(ctx context.Context, targets []SnapshotTarget) error {
	for _, target := range targets {
		for _, interval := range snapshotIntervals {
			su.rateLimiter.WaitIfNeeded()
			if err := su.snapshotOne(ctx, target, interval); err != nil {
				// 1銘柄の失敗で処理を止めずにログへ出力し、次を続ける
				slog.Error("failed to snapshot series", "symbol", target.Symbol, "interval", interval, "error", err)
				continue
			}
		}
	}
	return nil
}
