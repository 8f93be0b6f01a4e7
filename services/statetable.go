package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/aguasmx/presas/models"
	"github.com/aguasmx/presas/utils"
)

// StateSummary aggregates one day of records into per-state dam counts and
// volumes, appends the national total and sorts by fill percentage, highest
// first.
func StateSummary(records []models.DailyRecord, day time.Time) ([]models.StateRow, error) {
	byState := make(map[string]*models.StateRow)
	national := models.StateRow{Entidad: models.NationalRow}

	for _, record := range records {
		date, err := record.Date()
		if err != nil {
			return nil, fmt.Errorf("StateSummary: %v", err)
		}

		if !date.Equal(utils.Midnight(day)) {
			continue
		}

		estado, err := models.EstadoFromNombre(record.NombreOficial)
		if err != nil {
			return nil, fmt.Errorf("StateSummary: %v", err)
		}

		row, found := byState[estado]
		if !found {
			row = &models.StateRow{Entidad: estado}
			byState[estado] = row
		}

		row.Presas++
		row.NAMO += record.NAMOAlmac
		row.Almacena += record.AlmacenaActual

		national.Presas++
		national.NAMO += record.NAMOAlmac
		national.Almacena += record.AlmacenaActual
	}

	if national.Presas == 0 {
		return nil, fmt.Errorf("StateSummary: no records for %s", day.Format(models.ReportDateLayout))
	}

	rows := make([]models.StateRow, 0, len(byState)+1)
	for _, row := range byState {
		rows = append(rows, *row)
	}

	rows = append(rows, national)

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].FillPercent() > rows[j].FillPercent()
	})

	return rows, nil
}

// FormatStateTable renders the summary for the terminal.
func FormatStateTable(rows []models.StateRow, day time.Time) string {
	display := &strings.Builder{}

	table := tablewriter.NewWriter(display)

	table.SetHeader([]string{"Entidad", "No. de presas", "Capacidad NAMO (hm³)", "Llenado"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetColumnSeparator("")

	display.WriteString(fmt.Sprintf("Almacenamiento al %s:\n", models.FechaLarga(day)))

	for _, row := range rows {
		table.Append([]string{
			row.Entidad,
			utils.FormatCount(row.Presas),
			utils.FormatHm3(row.NAMO),
			utils.FormatPercent(row.FillPercent()),
		})
	}

	table.Render()

	return display.String()
}
