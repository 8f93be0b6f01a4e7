package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateRowFillPercent(t *testing.T) {
	t.Run("normal", func(t *testing.T) {
		row := StateRow{Entidad: "Jalisco", NAMO: 200, Almacena: 50}
		assert.InDelta(t, 25.0, row.FillPercent(), 1e-9)
	})

	t.Run("zero capacity", func(t *testing.T) {
		row := StateRow{Entidad: "Jalisco"}
		assert.Equal(t, 0.0, row.FillPercent())
	})
}
