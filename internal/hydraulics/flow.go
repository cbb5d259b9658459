package hydraulics

import (
	"fmt"
	"math"

	"metercli/internal/domain"
)

// Area returns the cross-sectional area of a circular pipe, m².
func Area(diameter float64) float64 {
	return math.Pi * diameter * diameter / 4
}

// SolveFlowState solves the continuity relation Q = V·A for a pipe of the
// given diameter (m). Exactly one of velocity (m/s) or flow (m³/s) must be
// non-nil; the other is derived.
func SolveFlowState(diameter float64, velocity, flow *float64) (domain.FlowState, error) {
	if diameter <= 0 {
		return domain.FlowState{}, fmt.Errorf("%w: diameter must be positive, got %g", domain.ErrInvalidInput, diameter)
	}
	if (velocity == nil) == (flow == nil) {
		return domain.FlowState{}, fmt.Errorf("%w: exactly one of velocity or flow rate must be supplied", domain.ErrInvalidInput)
	}

	area := Area(diameter)
	st := domain.FlowState{Diameter: diameter, Area: area}

	switch {
	case velocity != nil:
		if *velocity < 0 {
			return domain.FlowState{}, fmt.Errorf("%w: velocity must be non-negative, got %g", domain.ErrInvalidInput, *velocity)
		}
		st.Velocity = *velocity
		st.Flow = *velocity * area
	default:
		if *flow < 0 {
			return domain.FlowState{}, fmt.Errorf("%w: flow rate must be non-negative, got %g", domain.ErrInvalidInput, *flow)
		}
		st.Flow = *flow
		st.Velocity = *flow / area
	}
	return st, nil
}
