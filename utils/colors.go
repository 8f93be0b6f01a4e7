package utils

import (
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ParseHexColor converts a "#RRGGBB" or "RRGGBB" string to a drawing color.
func ParseHexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}
