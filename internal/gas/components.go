package gas

import (
	_ "embed"
	"fmt"

	"github.com/gocarina/gocsv"
)

//go:embed components.csv
var componentsCSV []byte

// Component is one row of the gas component property table. Critical
// properties and heating values are zero for components where the reference
// data carries none; such components still contribute molecular weight.
type Component struct {
	Name            string  `csv:"name"`
	MolecularWeight float64 `csv:"mw"`         // g/mol
	CriticalTempK   float64 `csv:"tc_k"`       // K
	CriticalPMPa    float64 `csv:"pc_mpa"`     // MPa
	CriticalDensity float64 `csv:"rhoc_kg_m3"` // kg/m³
	Acentric        float64 `csv:"omega"`
	HigherHeating   float64 `csv:"hhv_mj_m3"` // MJ/m³ at STP
	LowerHeating    float64 `csv:"lhv_mj_m3"` // MJ/m³ at STP
}

// loadComponents parses the embedded property table into a name-keyed map.
func loadComponents() (map[string]Component, error) {
	var rows []Component
	if err := gocsv.UnmarshalBytes(componentsCSV, &rows); err != nil {
		return nil, fmt.Errorf("parse component table: %w", err)
	}
	table := make(map[string]Component, len(rows))
	for _, c := range rows {
		table[c.Name] = c
	}
	return table, nil
}
