package engine

import "math/rand"

// pullRate は目標価格へ1期間あたり引き寄せられるギャップの割合です。
const pullRate = 0.1

// pricePath はトレンドとボラティリティから終値相当の価格系列を生成します。
// 各期間の価格は前期間の価格に依存する逐次計算です:
// 目標価格（基準価格×トレンド）へ pullRate で平均回帰しつつ、
// 現在価格に比例したボラティリティショックを重ねます。
func pricePath(r *rand.Rand, basePrice float64, trend, vol []float64) []float64 {
	prices := make([]float64, len(trend))

	current := basePrice
	for i := range trend {
		target := basePrice * (1 + trend[i])
		shock := r.NormFloat64() * vol[i]

		current += (target-current)*pullRate + current*shock
		prices[i] = current
	}

	return prices
}
