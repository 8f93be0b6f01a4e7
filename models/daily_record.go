package models

import (
	"fmt"
	"strings"
	"time"
)

const ReportDateLayout = "2006-01-02"

// DailyRecord is one reservoir reading from the PresasPG daily report. Field
// order mirrors the upstream payload so consolidated CSVs keep the same
// column layout as the API.
type DailyRecord struct {
	IDMonitoreoDiario int64   `json:"idmonitoreodiario" csv:"idmonitoreodiario"`
	FechaMonitoreo    string  `json:"fechamonitoreo" csv:"fechamonitoreo"`
	ClaveSIH          string  `json:"clavesih" csv:"clavesih"`
	NombreOficial     string  `json:"nombreoficial" csv:"nombreoficial"`
	NombreComun       string  `json:"nombrecomun" csv:"nombrecomun"`
	Estado            string  `json:"estado" csv:"estado"`
	NomMunicipio      string  `json:"nommunicipio" csv:"nommunicipio"`
	RegionCNA         string  `json:"regioncna" csv:"regioncna"`
	Latitud           float64 `json:"latitud" csv:"latitud"`
	Longitud          float64 `json:"longitud" csv:"longitud"`
	Uso               string  `json:"uso" csv:"uso"`
	Corriente         string  `json:"corriente" csv:"corriente"`
	TipoVertedor      string  `json:"tipovertedor" csv:"tipovertedor"`
	InicioOp          string  `json:"inicioop" csv:"inicioop"`
	ElevCorona        string  `json:"elevcorona" csv:"elevcorona"`
	BordoLibre        float64 `json:"bordolibre" csv:"bordolibre"`
	NAMEElev          float64 `json:"nameelev" csv:"nameelev"`
	NAMEAlmac         float64 `json:"namealmac" csv:"namealmac"`
	NAMOElev          float64 `json:"namoelev" csv:"namoelev"`
	NAMOAlmac         float64 `json:"namoalmac" csv:"namoalmac"`
	AlturaCortina     string  `json:"alturacortina" csv:"alturacortina"`
	ElevacionActual   float64 `json:"elevacionactual" csv:"elevacionactual"`
	AlmacenaActual    float64 `json:"almacenaactual" csv:"almacenaactual"`
	Llenano           float64 `json:"llenano" csv:"llenano"`
}

// Date parses fechamonitoreo. The API serves plain dates but older snapshots
// carry a timestamp suffix, so both layouts are accepted.
func (r DailyRecord) Date() (time.Time, error) {
	raw := strings.TrimSpace(r.FechaMonitoreo)

	if t, err := time.Parse(ReportDateLayout, raw); err == nil {
		return t, nil
	}

	t, err := time.Parse("2006-01-02T15:04:05", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("Date: failed to parse fechamonitoreo %q: %v", r.FechaMonitoreo, err)
	}

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// TrimStrings removes the stray padding the API ships on every text column.
func (r *DailyRecord) TrimStrings() {
	r.FechaMonitoreo = strings.TrimSpace(r.FechaMonitoreo)
	r.ClaveSIH = strings.TrimSpace(r.ClaveSIH)
	r.NombreOficial = strings.TrimSpace(r.NombreOficial)
	r.NombreComun = strings.TrimSpace(r.NombreComun)
	r.Estado = strings.TrimSpace(r.Estado)
	r.NomMunicipio = strings.TrimSpace(r.NomMunicipio)
	r.RegionCNA = strings.TrimSpace(r.RegionCNA)
	r.Uso = strings.TrimSpace(r.Uso)
	r.Corriente = strings.TrimSpace(r.Corriente)
	r.TipoVertedor = strings.TrimSpace(r.TipoVertedor)
	r.InicioOp = strings.TrimSpace(r.InicioOp)
	r.ElevCorona = strings.TrimSpace(r.ElevCorona)
	r.AlturaCortina = strings.TrimSpace(r.AlturaCortina)
}
