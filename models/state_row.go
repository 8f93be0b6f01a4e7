package models

// NationalRow is the label of the aggregate row appended to every state
// summary.
const NationalRow = "Nacional"

// StateRow aggregates the dams of one state on a given day.
type StateRow struct {
	Entidad  string
	Presas   int
	NAMO     float64
	Almacena float64
}

// FillPercent is the stored volume as a percentage of the state's NAMO
// capacity.
func (r StateRow) FillPercent() float64 {
	if r.NAMO == 0 {
		return 0
	}

	return r.Almacena / r.NAMO * 100
}
