package usecase

import "errors"

// 生成パラメータのバリデーションエラー。どのモデルも実行される前に返されます。
var (
	// ErrInvalidDays は days が負の場合のエラーです。
	ErrInvalidDays = errors.New("days parameter must be positive")
	// ErrDaysTooLarge は days が365を超える場合のエラーです。
	ErrDaysTooLarge = errors.New("days parameter cannot exceed 365")
	// ErrInvalidDateRange は start_date が end_date 以降の場合のエラーです。
	ErrInvalidDateRange = errors.New("start date must be before end date")
	// ErrIncompleteDateRange は日付範囲の片方だけが指定された場合のエラーです。
	ErrIncompleteDateRange = errors.New("start date and end date must be given together")
)
