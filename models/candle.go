package models

import "time"

// Candle is one month of a storage series collapsed to its open, close and
// extremes. Timestamp is the first day of the month.
type Candle struct {
	Timestamp time.Time
	Open      float64
	High      float64
	Low       float64
	Close     float64
}

// IsRising reports whether the month closed at or above its open.
func (c Candle) IsRising() bool {
	return c.Close >= c.Open
}
