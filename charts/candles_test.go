package charts

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCandles(t *testing.T) {
	t.Run("renders a full chart", func(t *testing.T) {
		opts := CandleChartOptions{
			Title:      "Evolución del volumen de almacenamiento de la presa Valle de Bravo (NAMO: 394.4 hm³)",
			YAxisTitle: "Almacenamiento actual en hm³",
			SourceDate: "abril 2024",
			Firma:      DefaultFirma,
			Candles:    monthlyCandles(24),
		}

		var buf bytes.Buffer
		err := RenderCandles(opts, &buf)
		require.NoError(t, err)

		img, err := png.Decode(&buf)
		require.NoError(t, err)
		assert.Equal(t, ChartWidth, img.Bounds().Dx())
		assert.Equal(t, ChartHeight, img.Bounds().Dy())
	})

	t.Run("renders the percent variant with a note box", func(t *testing.T) {
		opts := CandleChartOptions{
			Title:      "Evolución del volumen de almacenamiento de las principales presas del Sistema Cutzamala (NAMO: 781.7 hm³)",
			YAxisTitle: "Almacenamiento actual respecto al nivel máximo ordinario",
			Percent:    true,
			Note:       "Nota:\nCada vela representa las cifras\nmensuales de las presas:\n• Valle de Bravo, Méx.\n• El Bosque, Mich.",
			NoteSide:   "right",
			SourceDate: "abril 2024",
			Firma:      DefaultFirma,
			Candles:    monthlyCandles(180),
		}

		var buf bytes.Buffer
		err := RenderCandles(opts, &buf)
		require.NoError(t, err)

		img, err := png.Decode(&buf)
		require.NoError(t, err)
		assert.Equal(t, ChartWidth, img.Bounds().Dx())
	})

	t.Run("a single candle is an error", func(t *testing.T) {
		opts := CandleChartOptions{Candles: monthlyCandles(1)}

		var buf bytes.Buffer
		err := RenderCandles(opts, &buf)
		assert.Error(t, err)
		assert.Zero(t, buf.Len())
	})
}
