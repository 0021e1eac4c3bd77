// Package entity defines the domain models for the candles feature.
package entity

import "time"

// Candle represents one synthesized OHLCV (Open, High, Low, Close, Volume)
// candlestick for a symbol at a specific time interval.
type Candle struct {
	Symbol   string    // Trading symbol (e.g., "BTC", "7203.T")
	Interval string    // Timeframe label (e.g., "1h", "1d", "1w")
	Time     time.Time // Timestamp for the start of this candle period
	Open     float64   // Opening price
	High     float64   // Highest price during this period
	Low      float64   // Lowest price during this period
	Close    float64   // Closing price
	Volume   int64     // Traded volume
}
