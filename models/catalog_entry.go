package models

import "strings"

// CatalogEntry is the static description of one dam: the daily report row
// minus the monitoring id, the date and the three current-level readings.
type CatalogEntry struct {
	ClaveSIH      string  `csv:"clavesih"`
	NombreOficial string  `csv:"nombreoficial"`
	NombreComun   string  `csv:"nombrecomun"`
	Estado        string  `csv:"estado"`
	NomMunicipio  string  `csv:"nommunicipio"`
	RegionCNA     string  `csv:"regioncna"`
	Latitud       float64 `csv:"latitud"`
	Longitud      float64 `csv:"longitud"`
	Uso           string  `csv:"uso"`
	Corriente     string  `csv:"corriente"`
	TipoVertedor  string  `csv:"tipovertedor"`
	InicioOp      string  `csv:"inicioop"`
	ElevCorona    string  `csv:"elevcorona"`
	BordoLibre    float64 `csv:"bordolibre"`
	NAMEElev      float64 `csv:"nameelev"`
	NAMEAlmac     float64 `csv:"namealmac"`
	NAMOElev      float64 `csv:"namoelev"`
	NAMOAlmac     float64 `csv:"namoalmac"`
	AlturaCortina string  `csv:"alturacortina"`
}

func NewCatalogEntry(r DailyRecord) CatalogEntry {
	return CatalogEntry{
		ClaveSIH:      r.ClaveSIH,
		NombreOficial: r.NombreOficial,
		NombreComun:   NormalizeNombre(r.NombreComun),
		Estado:        r.Estado,
		NomMunicipio:  r.NomMunicipio,
		RegionCNA:     r.RegionCNA,
		Latitud:       r.Latitud,
		Longitud:      r.Longitud,
		Uso:           r.Uso,
		Corriente:     r.Corriente,
		TipoVertedor:  r.TipoVertedor,
		InicioOp:      r.InicioOp,
		ElevCorona:    r.ElevCorona,
		BordoLibre:    r.BordoLibre,
		NAMEElev:      r.NAMEElev,
		NAMEAlmac:     r.NAMEAlmac,
		NAMOElev:      r.NAMOElev,
		NAMOAlmac:     r.NAMOAlmac,
		AlturaCortina: r.AlturaCortina,
	}
}

// NormalizeNombre fixes the missing space after commas in upstream dam
// names, e.g. "El Tule,Dgo." becomes "El Tule, Dgo.".
func NormalizeNombre(name string) string {
	if !strings.Contains(name, ",") {
		return name
	}

	parts := strings.Split(name, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return strings.Join(parts, ", ")
}
