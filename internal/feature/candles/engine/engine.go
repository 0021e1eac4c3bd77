// Package engine はシナリオ・時間足・期間数から自己整合的なOHLCVロウソク足系列を
// 合成する生成エンジンを実装します。外部の市場には一切問い合わせません。
//
// パイプラインは厳密に直列です:
// トレンド → ボラティリティ → 価格パス → 出来高 → OHLC合成。
// 各ステージは単一の乱数ストリームから固定順で乱数を消費するため、
// 同じシードに対してビット単位で再現可能な系列が得られます。
package engine

import (
	"hash/fnv"
	"math/rand"

	"mockflow_backend/internal/feature/candles/domain/entity"
)

const (
	// DefaultBaseSeed はシード導出の基点です。時間足ごとのハッシュと
	// 組み合わせることで、時間足ごとに異なるパターンを生成します。
	DefaultBaseSeed = 42
	// DefaultBasePrice は銘柄ごとの指定がない場合の基準価格です。
	DefaultBasePrice = 50000

	// 価格の全体クリップ範囲。暴走した系列もこの範囲に収めます。
	priceFloor   = 1
	priceCeiling = 1_000_000
)

// Engine は決定的なOHLCV系列の生成器です。
// ゼロ値は使用せず、New で生成してください。
type Engine struct {
	baseSeed  int64
	basePrice float64
}

// New はデフォルトのシード基点と基準価格を持つ Engine を生成します。
func New() *Engine {
	return &Engine{baseSeed: DefaultBaseSeed, basePrice: DefaultBasePrice}
}

// NewWithSeed は指定されたシード基点を持つ Engine を生成します。
// テストや並行比較用に独立したストリームが必要な場合に使用します。
func NewWithSeed(baseSeed int64) *Engine {
	return &Engine{baseSeed: baseSeed, basePrice: DefaultBasePrice}
}

// Seed は時間足ラベルから生成シードを導出します。
// 同じ時間足は常に同じシードに解決されます。
func (e *Engine) Seed(timeframe string) int64 {
	h := fnv.New32a()
	h.Write([]byte(timeframe))
	return e.baseSeed + int64(h.Sum32()%1000)
}

// Generate は指定されたシナリオ・時間足・期間数のロウソク足系列を合成します。
// basePrice が0以下の場合はデフォルトの基準価格を使用します。
// 返されるCandleの Symbol / Interval / Time は未設定で、呼び出し側が付与します。
//
// 乱数の消費順序は契約です: トレンド全期間 → ボラティリティ全期間 →
// 価格パス → 出来高 → OHLC。順序を変えると再現性が壊れます。
func (e *Engine) Generate(sc entity.Scenario, timeframe string, periods int, basePrice float64) []entity.Candle {
	if periods <= 0 {
		return nil
	}
	if basePrice <= 0 {
		basePrice = e.basePrice
	}

	r := rand.New(rand.NewSource(e.Seed(timeframe)))

	trend := trendSignal(r, sc, periods)
	vol := volatilitySignal(r, timeframe, periods)
	prices := pricePath(r, basePrice, trend, vol)
	clipPrices(prices)
	volumes := volumeSignal(r, prices, vol)

	return synthesizeOHLC(r, prices, vol, volumes)
}

// clipPrices は価格系列を [priceFloor, priceCeiling] に収めます。
func clipPrices(prices []float64) {
	for i, p := range prices {
		prices[i] = clip(p)
	}
}

func clip(v float64) float64 {
	if v < priceFloor {
		return priceFloor
	}
	if v > priceCeiling {
		return priceCeiling
	}
	return v
}
