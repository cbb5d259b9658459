package hydraulics

import (
	"fmt"

	"metercli/internal/domain"
)

// Defaults for the optional pressure-drop inputs.
const (
	// DefaultRoughness is the absolute roughness of commercial steel, m.
	DefaultRoughness = 4.5e-5
	// DefaultDensity is water at standard conditions, kg/m³.
	DefaultDensity = 1000.0
	// DefaultKinematicViscosity is water at 20 °C, m²/s.
	DefaultKinematicViscosity = 1.004e-6
)

// PressureDropInputs are the SI inputs to a Darcy-Weisbach calculation.
// Roughness, Density and Viscosity are optional: nil selects the documented
// default, an explicit value is used as given. In particular an explicit
// roughness of zero means a hydraulically smooth pipe, not the default.
// Defaults are applied per call, never stored globally.
type PressureDropInputs struct {
	Flow      float64  // m³/s
	Diameter  float64  // m
	Length    float64  // m
	Roughness *float64 // absolute roughness, m; nil for DefaultRoughness
	Density   *float64 // kg/m³; nil for DefaultDensity
	Viscosity *float64 // kinematic viscosity, m²/s; nil for DefaultKinematicViscosity
}

func orDefault(v *float64, def float64) float64 {
	if v != nil {
		return *v
	}
	return def
}

func validate(in PressureDropInputs, roughness, density, viscosity float64) error {
	switch {
	case in.Diameter <= 0:
		return fmt.Errorf("%w: diameter must be positive, got %g", domain.ErrInvalidInput, in.Diameter)
	case in.Length <= 0:
		return fmt.Errorf("%w: length must be positive, got %g", domain.ErrInvalidInput, in.Length)
	case in.Flow < 0:
		return fmt.Errorf("%w: flow rate must be non-negative, got %g", domain.ErrInvalidInput, in.Flow)
	case roughness < 0:
		return fmt.Errorf("%w: roughness must be non-negative, got %g", domain.ErrInvalidInput, roughness)
	case density <= 0:
		return fmt.Errorf("%w: density must be positive, got %g", domain.ErrInvalidInput, density)
	case viscosity <= 0:
		return fmt.Errorf("%w: viscosity must be positive, got %g", domain.ErrInvalidInput, viscosity)
	}
	return nil
}

// PressureDrop evaluates the Darcy-Weisbach equation for the given inputs and
// returns the pressure drop together with the intermediate quantities.
func PressureDrop(in PressureDropInputs) (domain.PressureDropResult, error) {
	roughness := orDefault(in.Roughness, DefaultRoughness)
	density := orDefault(in.Density, DefaultDensity)
	viscosity := orDefault(in.Viscosity, DefaultKinematicViscosity)

	if err := validate(in, roughness, density, viscosity); err != nil {
		return domain.PressureDropResult{}, err
	}

	st, err := SolveFlowState(in.Diameter, nil, &in.Flow)
	if err != nil {
		return domain.PressureDropResult{}, err
	}

	// Zero flow produces no losses; avoid the 64/Re singularity.
	if st.Flow == 0 {
		return domain.PressureDropResult{Regime: domain.Laminar}, nil
	}

	re := st.Velocity * in.Diameter / viscosity
	f, regime := FrictionFactor(re, roughness/in.Diameter)

	deltaP := f * (in.Length / in.Diameter) * density * st.Velocity * st.Velocity / 2

	return domain.PressureDropResult{
		DeltaPa:        deltaP,
		Velocity:       st.Velocity,
		Reynolds:       re,
		FrictionFactor: f,
		Regime:         regime,
	}, nil
}
