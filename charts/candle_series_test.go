package charts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aguasmx/presas/models"
)

func monthlyCandles(n int) []models.Candle {
	candles := make([]models.Candle, 0, n)

	for i := 0; i < n; i++ {
		month := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, i, 0)
		base := 100.0 + float64(i)

		candles = append(candles, models.Candle{
			Timestamp: month,
			Open:      base,
			High:      base + 10,
			Low:       base - 10,
			Close:     base + 5,
		})
	}

	return candles
}

func TestCandleSeriesValues(t *testing.T) {
	series := CandleSeries{Candles: monthlyCandles(3)}

	t.Run("two values per candle", func(t *testing.T) {
		assert.Equal(t, 6, series.Len())
	})

	t.Run("even indexes map to lows, odd to highs", func(t *testing.T) {
		x0, low := series.GetValues(0)
		x1, high := series.GetValues(1)

		assert.Equal(t, x0, x1)
		assert.Equal(t, 90.0, low)
		assert.Equal(t, 110.0, high)

		x2, _ := series.GetValues(2)
		assert.Greater(t, x2, x0)
	})
}

func TestCandleSeriesValidate(t *testing.T) {
	t.Run("two candles pass", func(t *testing.T) {
		series := CandleSeries{Candles: monthlyCandles(2)}
		assert.NoError(t, series.Validate())
	})

	t.Run("one candle fails", func(t *testing.T) {
		series := CandleSeries{Candles: monthlyCandles(1)}
		assert.Error(t, series.Validate())
	})
}

func TestMonthTicks(t *testing.T) {
	t.Run("short series labels every month", func(t *testing.T) {
		ticks := monthTicks(monthlyCandles(12))
		require.Len(t, ticks, 12)
		assert.Equal(t, "2023-01", ticks[0].Label)
		assert.Equal(t, "2023-12", ticks[11].Label)
	})

	t.Run("long series thins the labels", func(t *testing.T) {
		ticks := monthTicks(monthlyCandles(180))
		require.NotEmpty(t, ticks)
		assert.LessOrEqual(t, len(ticks), 24)
		assert.Equal(t, "2023-01", ticks[0].Label)
	})
}
