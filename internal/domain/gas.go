package domain

// Composition maps gas component names to mole percentages. It does not have
// to sum to 100; the gas engine normalizes it before use.
type Composition map[string]float64

// GasConditions records the pressure and temperature a gas report was
// evaluated at, in both the caller's units and absolute units.
type GasConditions struct {
	PressureBarg float64
	PressureBara float64
	TemperatureC float64
	TemperatureK float64
	Composition  Composition // normalized to 100 mol%
}

// GasProperties holds the bulk properties of a gas mixture.
type GasProperties struct {
	MolecularWeight float64 // g/mol
	SpecificGravity float64 // relative to air
	ZFactor         float64
	Density         float64 // kg/m³ at the report conditions
	DensityStd      float64 // kg/m³ at 15 °C, 1.01325 bara
}

// HeatingValues holds volumetric heating values at standard conditions.
type HeatingValues struct {
	Higher float64 // MJ/m³
	Lower  float64 // MJ/m³
	Wobbe  float64 // MJ/m³
}

// CriticalProperties holds mole-fraction-mixed pseudo-critical properties.
type CriticalProperties struct {
	TemperatureK float64
	PressureMPa  float64
	Density      float64 // kg/m³
}

// GasReport is the full output of the gas property engine.
type GasReport struct {
	Conditions GasConditions
	Properties GasProperties
	Heating    HeatingValues
	Critical   CriticalProperties

	VolumeFactor float64 // 1/Z
	ReducedT     float64
	ReducedP     float64
}
