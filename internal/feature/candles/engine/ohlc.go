package engine

import (
	"math"
	"math/rand"

	"mockflow_backend/internal/feature/candles/domain/entity"
)

const (
	// gapScale は前の終値に対する始値ギャップのボラティリティ比です。
	gapScale = 0.2
	// intrabarScale は足内の高値・安値振れ幅のボラティリティ比です。
	intrabarScale = 0.5
)

// synthesizeOHLC は価格系列の各点を足内の値動きを持つロウソク足へ展開します。
//
// 始値は前の足の終値に小さなギャップを乗せた値（先頭の足は終値と同じ）、
// 高値・安値は始値と終値を包み込むように非負の振れ幅を加えて構成します。
// max / min による最終的な包絡により、クリップ前の時点で
// high ≥ max(open, close) かつ low ≤ min(open, close) が常に成立します。
func synthesizeOHLC(r *rand.Rand, prices, vol []float64, volumes []int64) []entity.Candle {
	candles := make([]entity.Candle, len(prices))

	prevClose := 0.0
	for i := range prices {
		closePrice := prices[i]

		var openPrice float64
		if i == 0 {
			openPrice = prices[i]
		} else {
			gap := r.NormFloat64() * vol[i] * gapScale
			openPrice = prevClose * (1 + gap)
		}

		intrabar := vol[i] * intrabarScale
		highVariation := math.Abs(r.NormFloat64() * intrabar)
		lowVariation := math.Abs(r.NormFloat64() * intrabar)

		highPrice := math.Max(openPrice, closePrice) * (1 + highVariation)
		lowPrice := math.Min(openPrice, closePrice) * (1 - lowVariation)

		candles[i] = entity.Candle{
			Open:   openPrice,
			High:   math.Max(openPrice, math.Max(highPrice, closePrice)),
			Low:    math.Min(openPrice, math.Min(lowPrice, closePrice)),
			Close:  closePrice,
			Volume: volumes[i],
		}
		prevClose = closePrice
	}

	// 全期間の計算後にまとめてクリップする。極端な系列への安全弁で、
	// 包絡の構成順序により不変条件はクリップ後も保たれる。
	for i := range candles {
		candles[i].Open = clip(candles[i].Open)
		candles[i].High = clip(candles[i].High)
		candles[i].Low = clip(candles[i].Low)
		candles[i].Close = clip(candles[i].Close)
		if candles[i].Volume < 0 {
			candles[i].Volume = 0
		}
	}

	return candles
}
