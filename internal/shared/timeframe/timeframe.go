// Package timeframe は時間足ラベルと期間数に関するユーティリティを提供します。
package timeframe

import "time"

const (
	// DefaultMinutes は未知の時間足ラベルに適用されるデフォルトの分数です（1時間）。
	DefaultMinutes = 60

	// ShortTimeframeCap は1時間未満の時間足に適用される期間数の上限です。
	ShortTimeframeCap = 2000
	// GlobalCap はすべての時間足に適用される期間数の安全上限です。
	GlobalCap = 10000
)

// minutesMap は時間足ラベルから分数への変換表です。
var minutesMap = map[string]int{
	"15m": 15,
	"30m": 30,
	"1h":  60,
	"2h":  120,
	"4h":  240,
	"12h": 720,
	"1d":  1440,
	"3d":  4320,
	"1w":  10080,
}

// Minutes は時間足ラベルに対応する分数を返します。
// 未知のラベルは DefaultMinutes（60分）にフォールバックします。
func Minutes(label string) int {
	if m, ok := minutesMap[label]; ok {
		return m
	}
	return DefaultMinutes
}

// Supported は対応しているすべての時間足ラベルを返します。
func Supported() []string {
	return []string{"15m", "30m", "1h", "2h", "4h", "12h", "1d", "3d", "1w"}
}

// PeriodsFromDays は日数と時間足の分数から期間数を計算します。
func PeriodsFromDays(days, minutes int) int {
	return days * 24 * 60 / minutes
}

// PeriodsFromRange は日付範囲と時間足の分数から期間数を計算します。
func PeriodsFromRange(start, end time.Time, minutes int) int {
	totalMinutes := int(end.Sub(start).Minutes())
	return totalMinutes / minutes
}

// ApplyCaps は期間数にパフォーマンス上限を適用します。
// limit が正で periods より小さい場合は limit を優先します。
// limit 未指定（0以下）の場合のみ、短い時間足の上限と全体上限を適用します。
func ApplyCaps(periods, minutes, limit int) int {
	if limit > 0 && limit < periods {
		periods = limit
	}

	if limit <= 0 && minutes < 60 && periods > ShortTimeframeCap {
		periods = ShortTimeframeCap
	} else if limit <= 0 && periods > GlobalCap {
		periods = GlobalCap
	}

	return periods
}

// Timestamps は開始日時から時間足の分数間隔で periods 個のタイムスタンプを生成します。
// 返されるタイムスタンプは厳密に単調増加します。
func Timestamps(periods, minutes int, start time.Time) []time.Time {
	ts := make([]time.Time, periods)
	step := time.Duration(minutes) * time.Minute
	for i := 0; i < periods; i++ {
		ts[i] = start.Add(time.Duration(i) * step)
	}
	return ts
}
