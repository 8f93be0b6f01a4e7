package models

import (
	"fmt"
	"strings"
	"time"
)

// Entidades maps the state abbreviations CONAGUA embeds in official dam
// names to full state names.
var Entidades = map[string]string{
	"Ags.":   "Aguascalientes",
	"B.C.":   "Baja California",
	"Chih.":  "Chihuahua",
	"Chis.":  "Chiapas",
	"Coah.":  "Coahuila",
	"Col.":   "Colima",
	"Dgo.":   "Durango",
	"Gro.":   "Guerrero",
	"Gto.":   "Guanajuato",
	"Hgo.":   "Hidalgo",
	"Jal.":   "Jalisco",
	"Mich.":  "Michoacán",
	"Mor.":   "Morelos",
	"Méx.":   "Estado de México",
	"N.L.":   "Nuevo León",
	"Nay.":   "Nayarit",
	"Oax.":   "Oaxaca",
	"Pue.":   "Puebla",
	"Qro.":   "Querétaro",
	"S.L.P.": "San Luis Potosí",
	"Sin.":   "Sinaloa",
	"Son.":   "Sonora",
	"Tamps.": "Tamaulipas",
	"Tlax.":  "Tlaxcala",
	"Ver.":   "Veracruz",
	"Zac.":   "Zacatecas",
}

// entidadesNota holds spellings used in chart note boxes where they differ
// from the full state name.
var entidadesNota = map[string]string{
	"Méx.": "Edo. de México",
}

// Meses holds the Spanish month names used in chart titles and footers.
var Meses = map[time.Month]string{
	time.January:   "enero",
	time.February:  "febrero",
	time.March:     "marzo",
	time.April:     "abril",
	time.May:       "mayo",
	time.June:      "junio",
	time.July:      "julio",
	time.August:    "agosto",
	time.September: "septiembre",
	time.October:   "octubre",
	time.November:  "noviembre",
	time.December:  "diciembre",
}

// EstadoFromNombre extracts the state from an official dam name, whose last
// comma-separated token is always a state abbreviation, e.g.
// "Presa Solís, Gto.".
func EstadoFromNombre(nombre string) (string, error) {
	parts := strings.Split(nombre, ",")
	abbr := strings.TrimSpace(parts[len(parts)-1])

	estado, found := Entidades[abbr]
	if !found {
		return "", fmt.Errorf("EstadoFromNombre: unknown state abbreviation %q in %q", abbr, nombre)
	}

	return estado, nil
}

// NombreConEstado rewrites a dam name so its trailing state abbreviation
// becomes the state name chart notes use, e.g. "El Cuchillo, N.L." ->
// "El Cuchillo, Nuevo León". México state is written "Edo. de México".
func NombreConEstado(nombre string) (string, error) {
	idx := strings.LastIndex(nombre, ",")
	if idx < 0 {
		return "", fmt.Errorf("NombreConEstado: no state abbreviation in %q", nombre)
	}

	abbr := strings.TrimSpace(nombre[idx+1:])
	estado, found := entidadesNota[abbr]
	if !found {
		estado, found = Entidades[abbr]
	}
	if !found {
		return "", fmt.Errorf("NombreConEstado: unknown state abbreviation %q in %q", abbr, nombre)
	}

	return fmt.Sprintf("%s, %s", strings.TrimSpace(nombre[:idx]), estado), nil
}

// FechaLarga renders a date as "2 de abril de 2024" for chart titles.
func FechaLarga(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), Meses[t.Month()], t.Year())
}

// MesAnio renders a date as "abril 2024" for source footers.
func MesAnio(t time.Time) string {
	return fmt.Sprintf("%s %d", Meses[t.Month()], t.Year())
}
