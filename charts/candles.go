package charts

import (
	"fmt"
	"io"
	"strings"

	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/aguasmx/presas/models"
	"github.com/aguasmx/presas/utils"
)

const (
	ChartWidth  = 1280
	ChartHeight = 720
)

// CandleChartOptions describes one candlestick image of the report.
type CandleChartOptions struct {
	// Title is the full chart title, already formatted.
	Title string

	// YAxisTitle labels the vertical axis.
	YAxisTitle string

	// Percent appends a % suffix to the y-axis ticks.
	Percent bool

	// Note is an optional multi-line box drawn inside the plot; NoteSide
	// anchors it "left" or "right".
	Note     string
	NoteSide string

	// SourceDate is the data cut shown in the source footer, e.g.
	// "abril 2024".
	SourceDate string

	// Firma signs the bottom right corner.
	Firma string

	Candles []models.Candle
}

// RenderCandles draws the monthly candlestick chart as a PNG.
func RenderCandles(opts CandleChartOptions, w io.Writer) error {
	if len(opts.Candles) < 2 {
		return fmt.Errorf("RenderCandles: need at least two monthly candles, have %d", len(opts.Candles))
	}

	font, err := chart.GetDefaultFont()
	if err != nil {
		return fmt.Errorf("RenderCandles: failed to load font: %v", err)
	}

	series := CandleSeries{
		Name:        "almacenamiento",
		StrokeWidth: 1.0,
		Candles:     opts.Candles,
	}

	gridStyle := chart.Style{
		StrokeColor: ColorGrid,
		StrokeWidth: 0.5,
	}

	axisStyle := chart.Style{
		Font:        font,
		FontSize:    11,
		FontColor:   ColorText,
		StrokeColor: ColorText,
	}

	yFormatter := func(v interface{}) string {
		value, isFloat := v.(float64)
		if !isFloat {
			return ""
		}

		if opts.Percent {
			return utils.FormatTick(value) + "%"
		}

		return utils.FormatTick(value)
	}

	graph := chart.Chart{
		Title: opts.Title,
		TitleStyle: chart.Style{
			Font:      font,
			FontSize:  17,
			FontColor: ColorText,
		},
		Width:  ChartWidth,
		Height: ChartHeight,
		Font:   font,
		Background: chart.Style{
			FillColor: ColorPaper,
			Padding:   chart.Box{Top: 48, Left: 22, Right: 26, Bottom: 72},
		},
		Canvas: chart.Style{
			FillColor: ColorPlot,
		},
		XAxis: chart.XAxis{
			Style:          axisStyle,
			Ticks:          monthTicks(opts.Candles),
			Range:          xRange(opts.Candles),
			GridMajorStyle: gridStyle,
			GridMinorStyle: gridStyle,
		},
		YAxis: chart.YAxis{
			Name: opts.YAxisTitle,
			NameStyle: chart.Style{
				Font:      font,
				FontSize:  13,
				FontColor: ColorText,
			},
			Style:          axisStyle,
			Range:          yRange(opts.Candles),
			ValueFormatter: yFormatter,
			GridMajorStyle: gridStyle,
			GridMinorStyle: gridStyle,
		},
		Series: []chart.Series{series},
	}

	graph.Elements = []chart.Renderable{footerText(opts, font)}
	if opts.Note != "" {
		graph.Elements = append(graph.Elements, noteBox(opts, font))
	}

	return graph.Render(chart.PNG, w)
}

// monthTicks labels roughly two dozen of the candle months, matching the
// tick density of a wide timeline without crowding.
func monthTicks(candles []models.Candle) []chart.Tick {
	stride := (len(candles) + 23) / 24

	var ticks []chart.Tick
	for i, candle := range candles {
		if i%stride != 0 {
			continue
		}

		ticks = append(ticks, chart.Tick{
			Value: float64(candle.Timestamp.UnixNano()),
			Label: candle.Timestamp.Format("2006-01"),
		})
	}

	return ticks
}

// xRange pads half a month on both ends so the edge candles are not clipped
// by the plot border.
func xRange(candles []models.Candle) chart.Range {
	first := candles[0].Timestamp.AddDate(0, 0, -15)
	last := candles[len(candles)-1].Timestamp.AddDate(0, 0, 15)

	return &chart.ContinuousRange{
		Min: float64(first.UnixNano()),
		Max: float64(last.UnixNano()),
	}
}

// yRange spans the wick extremes with a small margin.
func yRange(candles []models.Candle) chart.Range {
	min, max := candles[0].Low, candles[0].High
	for _, candle := range candles[1:] {
		if candle.Low < min {
			min = candle.Low
		}

		if candle.High > max {
			max = candle.High
		}
	}

	pad := (max - min) * 0.05
	if pad == 0 {
		pad = 1
	}

	return &chart.ContinuousRange{Min: min - pad, Max: max + pad}
}

func footerText(opts CandleChartOptions, font *truetype.Font) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		style := chart.Style{
			Font:      font,
			FontSize:  13,
			FontColor: ColorText,
		}
		style.WriteTextOptionsToRenderer(r)

		y := ChartHeight - 22

		r.Text(fmt.Sprintf("Fuente: CONAGUA (%s)", opts.SourceDate), 14, y)

		center := "Mes y año de registro"
		centerWidth := r.MeasureText(center).Width()
		r.Text(center, canvasBox.Left+(canvasBox.Width()-centerWidth)/2, y)

		firmaWidth := r.MeasureText(opts.Firma).Width()
		r.Text(opts.Firma, ChartWidth-firmaWidth-14, y)
	}
}

// noteBox draws the bordered note listing the dams behind the series, inside
// the plot near its top edge.
func noteBox(opts CandleChartOptions, font *truetype.Font) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		style := chart.Style{
			Font:      font,
			FontSize:  12,
			FontColor: ColorText,
		}
		style.WriteTextOptionsToRenderer(r)

		lines := strings.Split(opts.Note, "\n")

		textWidth := 0
		for _, line := range lines {
			if lineWidth := r.MeasureText(line).Width(); lineWidth > textWidth {
				textWidth = lineWidth
			}
		}

		const lineHeight = 18
		const pad = 10

		boxWidth := textWidth + pad*2
		boxHeight := lineHeight*len(lines) + pad*2

		top := canvasBox.Top + 14
		left := canvasBox.Left + 14
		if opts.NoteSide != "left" {
			left = canvasBox.Right - boxWidth - 14
		}

		chart.Draw.Box(r, chart.Box{
			Top:    top,
			Left:   left,
			Right:  left + boxWidth,
			Bottom: top + boxHeight,
		}, chart.Style{
			FillColor:   ColorPlot,
			StrokeColor: ColorText,
			StrokeWidth: 1.0,
		})

		// Draw.Box resets the renderer style on exit.
		style.WriteTextOptionsToRenderer(r)

		y := top + pad + lineHeight - 4
		for _, line := range lines {
			r.Text(line, left+pad, y)
			y += lineHeight
		}
	}
}
