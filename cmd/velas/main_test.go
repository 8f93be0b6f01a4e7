package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aguasmx/presas/charts"
	"github.com/aguasmx/presas/models"
)

func testCatalog() []models.CatalogEntry {
	return []models.CatalogEntry{
		{ClaveSIH: "VBRMX", NombreComun: "Valle de Bravo, Méx.", Estado: "Estado de México", NAMOAlmac: 394.4},
		{ClaveSIH: "DBOMC", NombreComun: "El Bosque, Mich.", Estado: "Michoacán", NAMOAlmac: 202.4},
		{ClaveSIH: "CCHNL", NombreComun: "El Cuchillo, N.L.", Estado: "Nuevo León", NAMOAlmac: 1123.1},
	}
}

func TestResolveClave(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		sel, err := resolveClave(testCatalog(), "VBRMX")
		assert.NoError(t, err)
		assert.True(t, sel.single)
		assert.Equal(t, []string{"VBRMX"}, sel.claves)
		assert.Equal(t, "Valle de Bravo, Méx.", sel.titulo)
		assert.InDelta(t, 394.4, sel.namo, 0.001)
		assert.Empty(t, sel.note)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := resolveClave(testCatalog(), "XXXXX")
		assert.Error(t, err)
	})
}

func TestResolveGrupo(t *testing.T) {
	gruposPath := filepath.Join(t.TempDir(), "grupos.yaml")
	yamlBody := `grupos:
  - name: cutzamala
    titulo: las principales presas del Sistema Cutzamala
    side: right
    claves:
      - VBRMX
      - DBOMC
  - name: fantasma
    titulo: un grupo que apunta a una clave inexistente
    claves:
      - XXXXX
`
	require.NoError(t, os.WriteFile(gruposPath, []byte(yamlBody), 0644))

	t.Run("resolves claves, namo and note", func(t *testing.T) {
		sel, err := resolveGrupo(testCatalog(), gruposPath, "cutzamala")
		assert.NoError(t, err)
		assert.False(t, sel.single)
		assert.Equal(t, []string{"VBRMX", "DBOMC"}, sel.claves)
		assert.Equal(t, "las principales presas del Sistema Cutzamala", sel.titulo)
		assert.Equal(t, "right", sel.side)
		assert.InDelta(t, 596.8, sel.namo, 0.001)
		assert.Contains(t, sel.note, "• Valle de Bravo, Edo. de México")
		assert.Contains(t, sel.note, "• El Bosque, Michoacán")
	})

	t.Run("clave missing from catalog", func(t *testing.T) {
		_, err := resolveGrupo(testCatalog(), gruposPath, "fantasma")
		assert.Error(t, err)
	})

	t.Run("unknown grupo", func(t *testing.T) {
		_, err := resolveGrupo(testCatalog(), gruposPath, "mayab")
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := resolveGrupo(testCatalog(), filepath.Join(t.TempDir(), "nope.yaml"), "cutzamala")
		assert.Error(t, err)
	})
}

func TestResolveEstado(t *testing.T) {
	t.Run("filters dams by state", func(t *testing.T) {
		sel, err := resolveEstado(testCatalog(), "Nuevo León")
		assert.NoError(t, err)
		assert.Equal(t, []string{"CCHNL"}, sel.claves)
		assert.Equal(t, "las principales presas de Nuevo León", sel.titulo)
		assert.Contains(t, sel.note, "presas del estado")
		assert.InDelta(t, 1123.1, sel.namo, 0.001)
	})

	t.Run("unknown state", func(t *testing.T) {
		_, err := resolveEstado(testCatalog(), "Atlantis")
		assert.Error(t, err)
	})
}

func TestRunRequiresExactlyOneSelector(t *testing.T) {
	_, err := Run(RunArgs{})
	assert.Error(t, err)

	_, err = Run(RunArgs{Clave: "VBRMX", Estado: "Nuevo León"})
	assert.Error(t, err)
}

// writeVelasFixtures lays out a catalog and one consolidated year covering
// the first ten days of January and February 2024 for VBRMX.
func writeVelasFixtures(t *testing.T) (catPath, dataDir string) {
	t.Helper()

	dir := t.TempDir()
	catPath = filepath.Join(dir, "catalogo.csv")
	dataDir = filepath.Join(dir, "data")
	require.NoError(t, os.MkdirAll(dataDir, 0755))

	catFile, err := os.Create(catPath)
	require.NoError(t, err)
	defer catFile.Close()

	catalog := testCatalog()
	require.NoError(t, gocsv.MarshalFile(&catalog, catFile))

	var records []models.DailyRecord
	for day := 1; day <= 10; day++ {
		records = append(records,
			models.DailyRecord{
				IDMonitoreoDiario: int64(day),
				FechaMonitoreo:    fmt.Sprintf("2024-01-%02d", day),
				ClaveSIH:          "VBRMX",
				NAMOAlmac:         394.4,
				AlmacenaActual:    150 + float64(day),
			},
			models.DailyRecord{
				IDMonitoreoDiario: int64(100 + day),
				FechaMonitoreo:    fmt.Sprintf("2024-02-%02d", day),
				ClaveSIH:          "VBRMX",
				NAMOAlmac:         394.4,
				AlmacenaActual:    160 + float64(day),
			},
		)
	}

	dataFile, err := os.Create(filepath.Join(dataDir, "2024.csv"))
	require.NoError(t, err)
	defer dataFile.Close()

	require.NoError(t, gocsv.MarshalFile(&records, dataFile))

	return catPath, dataDir
}

func TestRunWritesStackedChart(t *testing.T) {
	catPath, dataDir := writeVelasFixtures(t)

	t.Run("raw keeps the full daily series", func(t *testing.T) {
		outPath := filepath.Join(t.TempDir(), "fVBRMX.png")

		result, err := Run(RunArgs{
			Clave:    "VBRMX",
			DataDir:  dataDir,
			Catalogo: catPath,
			Raw:      true,
			Firma:    charts.DefaultFirma,
			Out:      outPath,
		})
		require.NoError(t, err)
		assert.Equal(t, outPath, result.OutPath)

		file, err := os.Open(outPath)
		require.NoError(t, err)
		defer file.Close()

		img, err := png.Decode(file)
		require.NoError(t, err)
		assert.Equal(t, charts.ChartWidth, img.Bounds().Dx())
		assert.Equal(t, charts.ChartHeight*2, img.Bounds().Dy())
	})

	t.Run("smoothing drops the warmup days and still charts both months", func(t *testing.T) {
		outPath := filepath.Join(t.TempDir(), "fVBRMX.png")

		result, err := Run(RunArgs{
			Clave:    "VBRMX",
			DataDir:  dataDir,
			Catalogo: catPath,
			Firma:    charts.DefaultFirma,
			Out:      outPath,
		})
		require.NoError(t, err)

		_, err = os.Stat(result.OutPath)
		assert.NoError(t, err)
	})
}
