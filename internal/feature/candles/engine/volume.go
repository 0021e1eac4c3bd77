package engine

import (
	"math"
	"math/rand"
)

const (
	// baseVolume は1期間あたりの基準出来高です。
	baseVolume = 1_000_000

	// 出来高とボラティリティ・価格変化率の相関係数。
	volumeVolatilityWeight  = 5
	volumePriceChangeWeight = 10
)

// volumeSignal は価格とボラティリティに相関した期間ごとの出来高を生成します。
// 4つの乗法係数（ボラティリティ・価格変化率・一様乱数・周期）を基準出来高に
// 掛け合わせ、整数へ切り捨てます。各期間で一様乱数を1回消費します。
func volumeSignal(r *rand.Rand, prices, vol []float64) []int64 {
	volumes := make([]int64, len(prices))

	for i := range prices {
		volatilityFactor := 1 + vol[i]*volumeVolatilityWeight

		// 期間0には前の価格が存在しないため係数1とする
		priceChangeFactor := 1.0
		if i > 0 {
			priceChangeFactor = 1 + math.Abs(prices[i]-prices[i-1])/prices[i-1]*volumePriceChangeWeight
		}

		randomFactor := 0.5 + r.Float64()*1.5 // 0.5〜2.0倍

		progress := float64(i) / float64(len(prices))
		cyclicalFactor := 1 + 0.3*math.Sin(progress*math.Pi*15)

		v := baseVolume * volatilityFactor * priceChangeFactor * randomFactor * cyclicalFactor
		if v < 0 {
			v = 0
		}
		volumes[i] = int64(v)
	}

	return volumes
}
