package engine

import (
	"math"
	"math/rand"
)

const (
	// volPersistence はショックの二乗が次期のボラティリティへ持ち越される係数です。
	volPersistence = 0.1
	// volReversion は基準値への平均回帰の強さです。
	volReversion = 0.8
	// volShockScale はショックの標準偏差です。
	volShockScale = 0.3

	// クラスタリング再帰の状態値に毎期間適用されるクランプ境界（基準値比）。
	volFloorRatio   = 0.3
	volCeilingRatio = 3.0

	// defaultBaseVolatility は未知の時間足に対する基準ボラティリティです。
	defaultBaseVolatility = 0.02
)

// baseVolatilityMap は時間足ごとの基準ボラティリティです。
// 短い時間足ほど1本あたりの変動は小さくなります。
var baseVolatilityMap = map[string]float64{
	"15m": 0.008,
	"30m": 0.012,
	"1h":  0.015,
	"2h":  0.020,
	"4h":  0.025,
	"12h": 0.035,
	"1d":  0.045,
	"3d":  0.065,
	"1w":  0.085,
}

// BaseVolatility は時間足ラベルに対応する基準ボラティリティを返します。
func BaseVolatility(timeframe string) float64 {
	if v, ok := baseVolatilityMap[timeframe]; ok {
		return v
	}
	return defaultBaseVolatility
}

// volatilitySignal はGARCH的なクラスタリングを持つ期間ごとのボラティリティを
// 生成します。大きなショックは volReversion を通じて後続の期間へ減衰しながら
// 持ち越されます。逐次再帰のため並列化はできません。
//
// クランプは再帰の状態値に対して毎期間適用されます。出力値はその後に
// 周期係数（0.7〜1.3）を乗じたものです。
func volatilitySignal(r *rand.Rand, timeframe string, periods int) []float64 {
	base := BaseVolatility(timeframe)
	vol := make([]float64, periods)

	current := base
	for i := 0; i < periods; i++ {
		shock := r.NormFloat64() * volShockScale

		current = base + volPersistence*shock*shock + volReversion*(current-base)
		current = math.Max(current, base*volFloorRatio)
		current = math.Min(current, base*volCeilingRatio)

		progress := float64(i) / float64(periods)
		cyclical := 1 + 0.3*math.Sin(progress*math.Pi*15)

		vol[i] = current * cyclical
	}

	return vol
}
