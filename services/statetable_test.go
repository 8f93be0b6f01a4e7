package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aguasmx/presas/models"
)

func TestStateSummary(t *testing.T) {
	target := time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC)

	records := []models.DailyRecord{
		{FechaMonitoreo: "2024-04-02", NombreOficial: "Presa Solís, Gto.", NAMOAlmac: 100, AlmacenaActual: 80},
		{FechaMonitoreo: "2024-04-02", NombreOficial: "Presa Allende, Gto.", NAMOAlmac: 100, AlmacenaActual: 70},
		{FechaMonitoreo: "2024-04-02", NombreOficial: "El Cuchillo, N.L.", NAMOAlmac: 100, AlmacenaActual: 90},
		{FechaMonitoreo: "2024-04-01", NombreOficial: "El Novillo, Son.", NAMOAlmac: 100, AlmacenaActual: 10},
	}

	t.Run("aggregates one day by state", func(t *testing.T) {
		rows, err := StateSummary(records, target)
		require.NoError(t, err)
		require.Len(t, rows, 3)

		assert.Equal(t, "Nuevo León", rows[0].Entidad)
		assert.Equal(t, 1, rows[0].Presas)
		assert.InDelta(t, 90.0, rows[0].FillPercent(), 1e-9)

		assert.Equal(t, models.NationalRow, rows[1].Entidad)
		assert.Equal(t, 3, rows[1].Presas)
		assert.Equal(t, 300.0, rows[1].NAMO)
		assert.Equal(t, 240.0, rows[1].Almacena)

		assert.Equal(t, "Guanajuato", rows[2].Entidad)
		assert.Equal(t, 2, rows[2].Presas)
		assert.InDelta(t, 75.0, rows[2].FillPercent(), 1e-9)
	})

	t.Run("no rows for the day is an error", func(t *testing.T) {
		_, err := StateSummary(records, time.Date(2023, time.April, 2, 0, 0, 0, 0, time.UTC))
		assert.Error(t, err)
	})

	t.Run("unknown state abbreviation is an error", func(t *testing.T) {
		bad := []models.DailyRecord{
			{FechaMonitoreo: "2024-04-02", NombreOficial: "Presa Fantasma, Xyz.", NAMOAlmac: 1, AlmacenaActual: 1},
		}

		_, err := StateSummary(bad, target)
		assert.Error(t, err)
	})
}

func TestFormatStateTable(t *testing.T) {
	target := time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC)

	rows := []models.StateRow{
		{Entidad: "Nuevo León", Presas: 1, NAMO: 1123.14, Almacena: 486.33},
		{Entidad: models.NationalRow, Presas: 210, NAMO: 125397.4, Almacena: 56428.8},
	}

	out := FormatStateTable(rows, target)

	assert.Contains(t, out, "Almacenamiento al 2 de abril de 2024")
	assert.Contains(t, out, "Nuevo León")
	assert.Contains(t, out, "43.30%")
	assert.Contains(t, out, "125,397.4")
}
