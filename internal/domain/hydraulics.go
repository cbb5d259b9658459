package domain

// FlowRegime classifies pipe flow by Reynolds number.
type FlowRegime string

const (
	Laminar      FlowRegime = "laminar"
	Transitional FlowRegime = "transitional"
	Turbulent    FlowRegime = "turbulent"
)

// FlowState is a solved continuity relation. Flow = Velocity * Area always
// holds for a returned value.
type FlowState struct {
	Diameter float64 // m
	Area     float64 // m²
	Velocity float64 // m/s
	Flow     float64 // m³/s
}

// PressureDropResult is the outcome of a Darcy-Weisbach calculation.
type PressureDropResult struct {
	DeltaPa        float64 // Pa
	Velocity       float64 // m/s
	Reynolds       float64
	FrictionFactor float64
	Regime         FlowRegime
}
