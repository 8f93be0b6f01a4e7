package charts

import (
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Shared palette of the report images.
var (
	ColorPaper   = drawing.ColorFromHex("282A3A")
	ColorPlot    = drawing.ColorFromHex("000000")
	ColorText    = drawing.ColorFromHex("FFFFFF")
	ColorRising  = drawing.ColorFromHex("84ffff")
	ColorFalling = drawing.ColorFromHex("ff9800")
	ColorYellow  = drawing.ColorFromHex("ffff00")

	// Gridlines are white at low opacity so they read against the black
	// plot area without competing with the candles.
	ColorGrid = drawing.Color{R: 255, G: 255, B: 255, A: 70}
)

// DefaultHeaderHex is the header tint of the state table.
const DefaultHeaderHex = "#DA0037"

// DefaultFirma signs the bottom right corner of every image.
const DefaultFirma = "@aguasmx"
