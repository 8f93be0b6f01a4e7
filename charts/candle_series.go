package charts

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/aguasmx/presas/models"
)

// CandleSeries draws monthly candles: a wick from low to high and a body
// between open and close, tinted by direction. It reports each candle's low
// and high through the values interface so the chart's y-range covers the
// full wick span.
type CandleSeries struct {
	Name        string
	Style       chart.Style
	StrokeWidth float64
	Candles     []models.Candle
}

func (cs CandleSeries) GetName() string {
	return cs.Name
}

func (cs CandleSeries) GetStyle() chart.Style {
	return cs.Style
}

func (cs CandleSeries) GetYAxis() chart.YAxisType {
	return chart.YAxisPrimary
}

// Len reports two values per candle, its low and its high.
func (cs CandleSeries) Len() int {
	return len(cs.Candles) * 2
}

func (cs CandleSeries) GetValues(index int) (float64, float64) {
	candle := cs.Candles[index/2]

	x := float64(candle.Timestamp.UnixNano())
	if index%2 == 0 {
		return x, candle.Low
	}

	return x, candle.High
}

func (cs CandleSeries) Validate() error {
	if len(cs.Candles) < 2 {
		return fmt.Errorf("candle series needs at least two candles")
	}

	return nil
}

func (cs CandleSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	strokeWidth := cs.StrokeWidth
	if strokeWidth == 0 {
		strokeWidth = 1.0
	}

	halfBody := int(float64(canvasBox.Width()) / float64(len(cs.Candles)) * 0.35)
	if halfBody < 1 {
		halfBody = 1
	}

	for _, candle := range cs.Candles {
		color := ColorFalling
		if candle.IsRising() {
			color = ColorRising
		}

		x := canvasBox.Left + xrange.Translate(float64(candle.Timestamp.UnixNano()))
		yHigh := canvasBox.Bottom - yrange.Translate(candle.High)
		yLow := canvasBox.Bottom - yrange.Translate(candle.Low)
		yOpen := canvasBox.Bottom - yrange.Translate(candle.Open)
		yClose := canvasBox.Bottom - yrange.Translate(candle.Close)

		r.SetStrokeColor(color)
		r.SetStrokeWidth(strokeWidth)
		r.MoveTo(x, yHigh)
		r.LineTo(x, yLow)
		r.Stroke()

		top, bottom := yOpen, yClose
		if bottom < top {
			top, bottom = bottom, top
		}

		// A flat month still gets a visible body.
		if bottom == top {
			bottom = top + 1
		}

		r.SetFillColor(color)
		r.MoveTo(x-halfBody, top)
		r.LineTo(x+halfBody, top)
		r.LineTo(x+halfBody, bottom)
		r.LineTo(x-halfBody, bottom)
		r.Close()
		r.Fill()
	}
}
