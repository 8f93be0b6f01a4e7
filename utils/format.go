package utils

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Mexican numbers group thousands with commas and keep the decimal point,
// which is what the English printer emits.
var printer = message.NewPrinter(language.English)

// FormatHm3 renders a volume in hm³ with thousand separators and one
// decimal, e.g. 19456.82 -> "19,456.8".
func FormatHm3(volume float64) string {
	return printer.Sprintf("%.1f", volume)
}

// FormatPercent renders a fill percentage with two decimals, e.g. "45.03%".
func FormatPercent(pct float64) string {
	return printer.Sprintf("%.2f%%", pct)
}

// FormatCount renders an integer with thousand separators.
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// FormatTick renders an axis tick value, dropping the decimal when whole.
func FormatTick(v float64) string {
	if v == math.Trunc(v) {
		return printer.Sprintf("%.0f", v)
	}

	return printer.Sprintf("%.1f", v)
}
