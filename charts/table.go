package charts

import (
	"fmt"
	"io"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/aguasmx/presas/models"
	"github.com/aguasmx/presas/utils"
)

const (
	TableWidth  = 840
	TableHeight = 1050

	tableMarginTop  = 80
	tableMarginSide = 40
	tableRowHeight  = 32
)

// Column weights from the report layout; the widths scale to fill the page.
var columnWeights = [4]int{100, 80, 130, 100}

var columnHeaders = [4]string{
	"Entidad",
	"No. presas",
	"Capacidad NAMO (hm³)*",
	"% de llenado ↓",
}

// StateTableOptions describes the per-state summary image.
type StateTableOptions struct {
	// Day is the data cut shown in the subtitle.
	Day time.Time

	// HeaderColor tints the header row.
	HeaderColor drawing.Color

	// Firma signs the bottom right corner.
	Firma string

	Rows []models.StateRow
}

// RenderStateTable draws the per-state summary as a PNG.
func RenderStateTable(opts StateTableOptions, w io.Writer) error {
	if len(opts.Rows) == 0 {
		return fmt.Errorf("RenderStateTable: no rows to render")
	}

	font, err := chart.GetDefaultFont()
	if err != nil {
		return fmt.Errorf("RenderStateTable: failed to load font: %v", err)
	}

	r, err := chart.PNG(TableWidth, TableHeight)
	if err != nil {
		return fmt.Errorf("RenderStateTable: failed to create renderer: %v", err)
	}

	r.SetDPI(chart.DefaultDPI)

	chart.Draw.Box(r, chart.Box{Right: TableWidth, Bottom: TableHeight}, chart.Style{
		FillColor: ColorPaper,
	})

	titleStyle := chart.Style{
		Font:      font,
		FontSize:  19,
		FontColor: ColorText,
	}

	subtitle := fmt.Sprintf("(corte al %02d de %s del %d)", opts.Day.Day(), models.Meses[opts.Day.Month()], opts.Day.Year())
	drawCentered(r, "Volumen de almacenamiento de las presas de México por entidad", TableWidth/2, 36, titleStyle)
	drawCentered(r, subtitle, TableWidth/2, 64, titleStyle)

	widths := columnWidths()

	cellStyle := chart.Style{
		Font:      font,
		FontSize:  13,
		FontColor: ColorText,
	}

	gridStyle := chart.Style{
		StrokeColor: ColorText,
		StrokeWidth: 0.75,
	}

	// Header row.
	y := tableMarginTop
	x := tableMarginSide
	for col, header := range columnHeaders {
		cell := chart.Box{Top: y, Left: x, Right: x + widths[col], Bottom: y + tableRowHeight}

		chart.Draw.Box(r, cell, chart.Style{
			FillColor:   opts.HeaderColor,
			StrokeColor: ColorText,
			StrokeWidth: 0.75,
		})

		drawCell(r, header, cell, cellStyle, col == 0)

		x += widths[col]
	}

	// Data rows. The national aggregate stands out in yellow.
	y += tableRowHeight
	for _, row := range opts.Rows {
		rowStyle := cellStyle
		if row.Entidad == models.NationalRow {
			rowStyle.FontColor = ColorYellow
		}

		values := [4]string{
			row.Entidad,
			utils.FormatCount(row.Presas),
			utils.FormatHm3(row.NAMO),
			utils.FormatPercent(row.FillPercent()),
		}

		x = tableMarginSide
		for col, value := range values {
			cell := chart.Box{Top: y, Left: x, Right: x + widths[col], Bottom: y + tableRowHeight}

			chart.Draw.Box(r, cell, chart.Style{
				FillColor:   ColorPlot,
				StrokeColor: gridStyle.StrokeColor,
				StrokeWidth: gridStyle.StrokeWidth,
			})

			drawCell(r, value, cell, rowStyle, col == 0)

			x += widths[col]
		}

		y += tableRowHeight
	}

	footerStyle := chart.Style{
		Font:      font,
		FontSize:  12,
		FontColor: ColorText,
	}
	footerStyle.WriteTextOptionsToRenderer(r)

	footerY := TableHeight - 18
	r.Text("Fuente: CONAGUA", 14, footerY)

	nota := "*Nivel de aguas máximo ordinario"
	notaWidth := r.MeasureText(nota).Width()
	r.Text(nota, (TableWidth-notaWidth)/2, footerY)

	firmaWidth := r.MeasureText(opts.Firma).Width()
	r.Text(opts.Firma, TableWidth-firmaWidth-14, footerY)

	return r.Save(w)
}

// columnWidths scales the column weights to the printable width, giving the
// last column the rounding remainder.
func columnWidths() [4]int {
	printable := TableWidth - tableMarginSide*2

	total := 0
	for _, weight := range columnWeights {
		total += weight
	}

	var widths [4]int
	used := 0
	for i, weight := range columnWeights {
		widths[i] = printable * weight / total
		used += widths[i]
	}
	widths[3] += printable - used

	return widths
}

// drawCell writes a value inside a cell, left aligned for the first column
// and centered elsewhere.
func drawCell(r chart.Renderer, text string, cell chart.Box, style chart.Style, leftAlign bool) {
	style.WriteTextOptionsToRenderer(r)

	textBox := r.MeasureText(text)

	x := cell.Left + 10
	if !leftAlign {
		x = cell.Left + (cell.Width()-textBox.Width())/2
	}

	y := cell.Top + (cell.Height()+textBox.Height())/2 - 2

	r.Text(text, x, y)
}

func drawCentered(r chart.Renderer, text string, centerX, baselineY int, style chart.Style) {
	style.WriteTextOptionsToRenderer(r)

	width := r.MeasureText(text).Width()
	r.Text(text, centerX-width/2, baselineY)
}
