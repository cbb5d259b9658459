package hydraulics

import (
	"math"

	"metercli/internal/domain"
)

// Reynolds-number regime boundaries.
const (
	LaminarLimit   = 2300.0
	TurbulentOnset = 4000.0
)

// Classify maps a Reynolds number to its flow regime.
func Classify(re float64) domain.FlowRegime {
	switch {
	case re < LaminarLimit:
		return domain.Laminar
	case re < TurbulentOnset:
		return domain.Transitional
	default:
		return domain.Turbulent
	}
}

// FrictionFactor estimates the Darcy friction factor for the given Reynolds
// number and relative roughness ε/D.
//
// Laminar flow uses the exact Hagen-Poiseuille result f = 64/Re. Transitional
// and turbulent flow use the Swamee-Jain approximation to the implicit
// Colebrook-White relation:
//
//	f = 0.25 / log10(ε/(3.7·D) + 5.74/Re^0.9)²
//
// which stays within a few percent of Colebrook-White across the turbulent
// range and tends to the smooth-pipe asymptote as ε/D → 0.
func FrictionFactor(re, relativeRoughness float64) (float64, domain.FlowRegime) {
	regime := Classify(re)
	if regime == domain.Laminar {
		return 64 / re, regime
	}
	x := relativeRoughness/3.7 + 5.74/math.Pow(re, 0.9)
	l := math.Log10(x)
	return 0.25 / (l * l), regime
}
