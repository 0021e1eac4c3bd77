package entity

import (
	"fmt"
	"hash/fnv"
)

// Scenario は相場シナリオ（強気・弱気・レンジ）を表すタグ付きの列挙型です。
// 文字列比較ではなく閉じた型で分岐することで、未知のシナリオが
// 生成エンジンまで到達しないことを型レベルで保証します。
type Scenario int

const (
	// ScenarioBull は上昇トレンド相場です。
	ScenarioBull Scenario = iota
	// ScenarioBear は下落トレンド相場です。
	ScenarioBear
	// ScenarioSideways はレンジ相場です。
	ScenarioSideways
)

// ScenarioAuto はシンボルと時間足から決定的にシナリオを選択する指定値です。
const ScenarioAuto = "auto"

// String はシナリオのラベル文字列を返します。
func (s Scenario) String() string {
	switch s {
	case ScenarioBull:
		return "bull"
	case ScenarioBear:
		return "bear"
	case ScenarioSideways:
		return "sideways"
	default:
		return fmt.Sprintf("scenario(%d)", int(s))
	}
}

// ParseScenario はシナリオ文字列を解析します。
// "auto" はここでは解決できないため、呼び出し側が事前に
// ResolveAutoScenario で具体的なシナリオに解決してください。
func ParseScenario(s string) (Scenario, error) {
	switch s {
	case "bull":
		return ScenarioBull, nil
	case "bear":
		return ScenarioBear, nil
	case "sideways":
		return ScenarioSideways, nil
	default:
		return 0, fmt.Errorf("unknown scenario %q", s)
	}
}

// ResolveAutoScenario はシンボルと時間足の組み合わせから決定的に
// シナリオを選択します。同じ組み合わせは常に同じシナリオに解決されます。
func ResolveAutoScenario(symbol, timeframe string) Scenario {
	h := fnv.New32a()
	h.Write([]byte(symbol + timeframe))
	return []Scenario{ScenarioBull, ScenarioBear, ScenarioSideways}[h.Sum32()%3]
}
