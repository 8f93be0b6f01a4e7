package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/aguasmx/presas/models"
)

// DailyTotal is the combined storage of a dam set on one date, along with
// the NAMO capacity those dams reported that same day.
type DailyTotal struct {
	Date    time.Time
	Storage float64
	NAMO    float64
}

// DailyTotals pivots records into one row per date, summing storage and NAMO
// across the dam set. A dam reporting the same date twice keeps the last
// occurrence in input order.
func DailyTotals(records []models.DailyRecord) ([]DailyTotal, error) {
	type reading struct {
		storage float64
		namo    float64
	}

	byDate := make(map[time.Time]map[string]reading)
	for _, record := range records {
		date, err := record.Date()
		if err != nil {
			return nil, fmt.Errorf("DailyTotals: %v", err)
		}

		dams, found := byDate[date]
		if !found {
			dams = make(map[string]reading)
			byDate[date] = dams
		}

		dams[record.ClaveSIH] = reading{storage: record.AlmacenaActual, namo: record.NAMOAlmac}
	}

	dates := make([]time.Time, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}

	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})

	totals := make([]DailyTotal, 0, len(dates))
	for _, date := range dates {
		dams := byDate[date]

		// Sum in clave order so the float result is reproducible.
		claves := make([]string, 0, len(dams))
		for clave := range dams {
			claves = append(claves, clave)
		}
		sort.Strings(claves)

		total := DailyTotal{Date: date}
		for _, clave := range claves {
			total.Storage += dams[clave].storage
			total.NAMO += dams[clave].namo
		}

		totals = append(totals, total)
	}

	return totals, nil
}

// PercentOfNAMO rescales each total to a percentage of the NAMO capacity
// reported that same day, so mid-year capacity revisions do not distort
// older readings.
func PercentOfNAMO(totals []DailyTotal) []DailyTotal {
	percents := make([]DailyTotal, len(totals))
	for i, total := range totals {
		pct := 0.0
		if total.NAMO != 0 {
			pct = total.Storage / total.NAMO * 100
		}

		percents[i] = DailyTotal{Date: total.Date, Storage: pct, NAMO: total.NAMO}
	}

	return percents
}

// SmoothMedian replaces each value with the median of the trailing window,
// dropping the leading dates that do not yet fill one. This absorbs the
// one-day spikes the monitoring network produces when a station reports
// late. Window <= 1 returns the input unchanged.
func SmoothMedian(totals []DailyTotal, window int) ([]DailyTotal, error) {
	if window <= 1 {
		return totals, nil
	}

	if len(totals) < window {
		return nil, fmt.Errorf("SmoothMedian: need at least %d data points, have %d", window, len(totals))
	}

	smoothed := make([]DailyTotal, 0, len(totals)-window+1)
	values := make([]float64, window)

	for i := window - 1; i < len(totals); i++ {
		for j := 0; j < window; j++ {
			values[j] = totals[i-window+1+j].Storage
		}

		median, err := stats.Median(values)
		if err != nil {
			return nil, fmt.Errorf("SmoothMedian: %v", err)
		}

		smoothed = append(smoothed, DailyTotal{Date: totals[i].Date, Storage: median, NAMO: totals[i].NAMO})
	}

	return smoothed, nil
}

// MonthlyOHLC collapses a date-ordered series into one candle per calendar
// month: open and close are the first and last readings, high and low the
// extremes. Months without data are skipped rather than interpolated.
func MonthlyOHLC(totals []DailyTotal) []models.Candle {
	var candles []models.Candle
	var current *models.Candle

	for _, total := range totals {
		month := time.Date(total.Date.Year(), total.Date.Month(), 1, 0, 0, 0, 0, time.UTC)

		if current == nil || !current.Timestamp.Equal(month) {
			if current != nil {
				candles = append(candles, *current)
			}

			current = &models.Candle{
				Timestamp: month,
				Open:      total.Storage,
				High:      total.Storage,
				Low:       total.Storage,
				Close:     total.Storage,
			}

			continue
		}

		if total.Storage > current.High {
			current.High = total.Storage
		}

		if total.Storage < current.Low {
			current.Low = total.Storage
		}

		current.Close = total.Storage
	}

	if current != nil {
		candles = append(candles, *current)
	}

	return candles
}
