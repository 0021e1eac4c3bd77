package engine

import (
	"math"
	"math/rand"

	"mockflow_backend/internal/feature/candles/domain/entity"
)

// wave は周期的なトレンド成分（振幅と周波数）です。
type wave struct {
	amplitude float64
	frequency float64
}

// trendParams はシナリオごとのトレンド定数表です。
type trendParams struct {
	totalDrift float64 // 全期間にわたる累積ドリフト（+0.8 = +80%）
	jitterSpan float64 // 一様ノイズの全幅（0.1 = ±5%）
	waves      []wave  // 重ね合わせる周期成分
}

// trendTable はシナリオから定数表への対応です。
// Scenarioは閉じた列挙型なので、ここに未知シナリオの分岐は存在しません。
var trendTable = map[entity.Scenario]trendParams{
	entity.ScenarioBull: {
		totalDrift: 0.8,
		jitterSpan: 0.1,
		waves:      []wave{{amplitude: 0.05, frequency: 8}}, // 小さな周期的押し目
	},
	entity.ScenarioBear: {
		totalDrift: -0.6,
		jitterSpan: 0.1,
		waves:      []wave{{amplitude: 0.08, frequency: 6}}, // 戻り売りのラリー
	},
	entity.ScenarioSideways: {
		totalDrift: 0,
		jitterSpan: 0.08,
		// レンジ相場は主サイクルと緩やかな小トレンドの重ね合わせ
		waves: []wave{{amplitude: 0.15, frequency: 12}, {amplitude: 0.05, frequency: 3}},
	},
}

// trendSignal はシナリオに応じた期間ごとの乗法ドリフト信号を生成します。
// 各期間で一様乱数を1回だけ消費します。
func trendSignal(r *rand.Rand, sc entity.Scenario, periods int) []float64 {
	p := trendTable[sc]
	trend := make([]float64, periods)

	for i := 0; i < periods; i++ {
		progress := float64(i) / float64(periods)

		base := progress * p.totalDrift
		noise := (r.Float64() - 0.5) * p.jitterSpan

		cyclical := 0.0
		for _, w := range p.waves {
			cyclical += math.Sin(progress*math.Pi*w.frequency) * w.amplitude
		}

		trend[i] = base + noise + cyclical
	}

	return trend
}
