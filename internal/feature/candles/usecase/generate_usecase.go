// Package usecase はロウソク足合成のビジネスロジックを実装します。
package usecase

import (
	"context"
	"time"

	"mockflow_backend/internal/feature/candles/domain/entity"
	"mockflow_backend/internal/shared/timeframe"
)

const (
	// DefaultTimeframe はデフォルトの時間足ラベルです。
	DefaultTimeframe = "1h"
	// DefaultDays はデフォルトの生成対象日数です。
	DefaultDays = 30
	// MaxDays は生成対象日数の上限です。
	MaxDays = 365
)

// referenceDate は相対指定モードの基準日です。固定日付を使うことで
// 同じパラメータが常に同じタイムスタンプ列に解決されます。
var referenceDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// SeriesGenerator はロウソク足系列の合成エンジンを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type SeriesGenerator interface {
	// Generate は指定されたシナリオ・時間足・期間数の系列を合成します。
	Generate(sc entity.Scenario, timeframe string, periods int, basePrice float64) []entity.Candle
}

// GenerateParams はロウソク足系列の生成リクエストです。
type GenerateParams struct {
	Symbol    string     // 銘柄シンボル（自由形式）
	Timeframe string     // 時間足ラベル。空ならDefaultTimeframe
	Limit     int        // 期間数の上限。0なら日数・日付範囲から自動算出
	Days      int        // 生成対象日数。0ならDefaultDays（日付範囲指定時は無視）
	Start     *time.Time // 絶対範囲の開始日時（Endとセットで指定）
	End       *time.Time // 絶対範囲の終了日時（Startとセットで指定）
	Scenario  string     // "bull" | "bear" | "sideways" | "auto"。空ならauto
	BasePrice float64    // 基準価格の上書き。0以下ならエンジンのデフォルト
}

// GenerateUsecase はパラメータ検証・期間数解決・シナリオ解決を行い、
// 合成エンジンを呼び出してタイムスタンプ付きの系列を組み立てます。
type GenerateUsecase struct {
	engine SeriesGenerator
}

// NewGenerateUsecase はGenerateUsecaseの新しいインスタンスを生成します。
func NewGenerateUsecase(engine SeriesGenerator) *GenerateUsecase {
	return &GenerateUsecase{engine: engine}
}

// GetSeries は検証済みパラメータからロウソク足系列を生成します。
// バリデーションエラーはエンジンが実行される前に返されます。
// 部分的な結果はありません: 検証を通過した呼び出しは必ず解決された
// 期間数ぶんの行を返します。
func (u *GenerateUsecase) GetSeries(ctx context.Context, p GenerateParams) ([]entity.Candle, error) {
	label := p.Timeframe
	if label == "" {
		label = DefaultTimeframe
	}
	mins := timeframe.Minutes(label)

	// 期間数と開始日時を解決する
	var (
		periods int
		start   time.Time
	)
	switch {
	case p.Start != nil && p.End != nil:
		// 絶対範囲モード
		if !p.Start.Before(*p.End) {
			return nil, ErrInvalidDateRange
		}
		periods = timeframe.PeriodsFromRange(*p.Start, *p.End, mins)
		start = *p.Start

	case p.Start != nil || p.End != nil:
		return nil, ErrIncompleteDateRange

	default:
		// 相対範囲モード
		days := p.Days
		if days == 0 {
			days = DefaultDays
		}
		if days < 0 {
			return nil, ErrInvalidDays
		}
		if days > MaxDays {
			return nil, ErrDaysTooLarge
		}
		periods = timeframe.PeriodsFromDays(days, mins)
		start = referenceDate.AddDate(0, 0, -days)
	}

	periods = timeframe.ApplyCaps(periods, mins, p.Limit)

	sc, err := u.resolveScenario(p.Scenario, p.Symbol, label)
	if err != nil {
		return nil, err
	}

	candles := u.engine.Generate(sc, label, periods, p.BasePrice)

	// シンボル・時間足・タイムスタンプを付与する
	ts := timeframe.Timestamps(len(candles), mins, start)
	for i := range candles {
		candles[i].Symbol = p.Symbol
		candles[i].Interval = label
		candles[i].Time = ts[i]
	}

	return candles, nil
}

// resolveScenario はシナリオ文字列を具体的なシナリオへ解決します。
// "auto"（および未指定）はシンボルと時間足から決定的に選択されます。
func (u *GenerateUsecase) resolveScenario(scenario, symbol, label string) (entity.Scenario, error) {
	if scenario == "" || scenario == entity.ScenarioAuto {
		return entity.ResolveAutoScenario(symbol, label), nil
	}
	return entity.ParseScenario(scenario)
}
