package models

import (
	"fmt"
	"strings"
)

type GruposConfigYAML struct {
	Grupos []GrupoYAML `yaml:"grupos"`
}

// GrupoYAML names a set of dams charted together, e.g. the Cutzamala system.
type GrupoYAML struct {
	Name   string   `yaml:"name"`
	Titulo string   `yaml:"titulo"`
	Side   string   `yaml:"side"`
	Claves []string `yaml:"claves"`
}

func (g *GruposConfigYAML) GetGrupo(name string) (*GrupoYAML, error) {
	name1 := strings.ToLower(name)
	for _, grupo := range g.Grupos {
		name2 := strings.ToLower(grupo.Name)
		if name1 == name2 {
			return &grupo, nil
		}
	}

	return nil, fmt.Errorf("GruposConfigYAML: grupo not found")
}
