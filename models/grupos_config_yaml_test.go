package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const sampleGruposYAML = `
grupos:
  - name: cutzamala
    titulo: las principales presas del Sistema Cutzamala
    side: right
    claves:
      - VBRMX
      - DBOMC
      - VVCMX
  - name: nuevo-leon
    titulo: las principales presas de Nuevo León
    side: left
    claves:
      - CCHNL
      - CPRNL
      - LBCNL
`

func TestGetGrupo(t *testing.T) {
	var config GruposConfigYAML
	err := yaml.Unmarshal([]byte(sampleGruposYAML), &config)
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		grupo, err := config.GetGrupo("cutzamala")
		require.NoError(t, err)
		assert.Equal(t, "las principales presas del Sistema Cutzamala", grupo.Titulo)
		assert.Equal(t, []string{"VBRMX", "DBOMC", "VVCMX"}, grupo.Claves)
		assert.Equal(t, "right", grupo.Side)
	})

	t.Run("case insensitive", func(t *testing.T) {
		grupo, err := config.GetGrupo("Nuevo-Leon")
		require.NoError(t, err)
		assert.Equal(t, "nuevo-leon", grupo.Name)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := config.GetGrupo("yucatan")
		assert.Error(t, err)
	})
}
