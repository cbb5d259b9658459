package hydraulics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metercli/internal/domain"
	"metercli/internal/hydraulics"
)

func TestClassifyRegimeBoundaries(t *testing.T) {
	tests := []struct {
		re   float64
		want domain.FlowRegime
	}{
		{1000, domain.Laminar},
		{2299, domain.Laminar},
		{2300, domain.Transitional},
		{2301, domain.Transitional},
		{3999, domain.Transitional},
		{4000, domain.Turbulent},
		{4001, domain.Turbulent},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, hydraulics.Classify(tc.re), "Re=%g", tc.re)
	}
}

func TestFrictionFactorLaminarExact(t *testing.T) {
	f, regime := hydraulics.FrictionFactor(1000, 0.001)
	assert.Equal(t, domain.Laminar, regime)
	assert.InDelta(t, 0.064, f, 1e-15)
}

func TestFrictionFactorSwameeJain(t *testing.T) {
	// Hand-evaluated Swamee-Jain values at Re = 1e5.
	f, regime := hydraulics.FrictionFactor(1e5, 0)
	assert.Equal(t, domain.Turbulent, regime)
	assert.InDelta(t, 0.017863, f, 1e-4)

	f, _ = hydraulics.FrictionFactor(1e5, 0.001)
	assert.InDelta(t, 0.022342, f, 1e-4)

	// Roughness increases friction; higher Re decreases it for a smooth pipe.
	smooth, _ := hydraulics.FrictionFactor(1e5, 0)
	rough, _ := hydraulics.FrictionFactor(1e5, 0.01)
	assert.Greater(t, rough, smooth)

	faster, _ := hydraulics.FrictionFactor(1e7, 0)
	assert.Less(t, faster, smooth)
}

func TestPressureDropLaminarKnownValue(t *testing.T) {
	// Velocity chosen so Re = V·D/ν is exactly 1000.
	const (
		diameter  = 0.1
		length    = 10.0
		viscosity = hydraulics.DefaultKinematicViscosity
	)
	velocity := 1000 * viscosity / diameter
	flow := velocity * hydraulics.Area(diameter)

	result, err := hydraulics.PressureDrop(hydraulics.PressureDropInputs{
		Flow:     flow,
		Diameter: diameter,
		Length:   length,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.Laminar, result.Regime)
	assert.InDelta(t, 1000, result.Reynolds, 1e-9)
	assert.InDelta(t, 0.064, result.FrictionFactor, 1e-12)

	want := 0.064 * (length / diameter) * hydraulics.DefaultDensity * velocity * velocity / 2
	assert.InDelta(t, want, result.DeltaPa, 1e-9)
}

func TestPressureDropTurbulent(t *testing.T) {
	result, err := hydraulics.PressureDrop(hydraulics.PressureDropInputs{
		Flow:     0.01,
		Diameter: 0.1,
		Length:   100,
	})
	require.NoError(t, err)

	velocity := 0.01 / hydraulics.Area(0.1)
	assert.InDelta(t, velocity, result.Velocity, 1e-12)
	assert.InDelta(t, velocity*0.1/hydraulics.DefaultKinematicViscosity, result.Reynolds, 1e-6)
	assert.Equal(t, domain.Turbulent, result.Regime)
	assert.Greater(t, result.FrictionFactor, 0.01)
	assert.Less(t, result.FrictionFactor, 0.03)

	// Darcy-Weisbach consistency of the returned record.
	want := result.FrictionFactor * (100 / 0.1) * hydraulics.DefaultDensity * velocity * velocity / 2
	assert.InDelta(t, want, result.DeltaPa, 1e-9)
}

func TestPressureDropTransitionalUsesTurbulentEstimate(t *testing.T) {
	// Velocity chosen so Re lands mid-band at 3000.
	const diameter = 0.1
	velocity := 3000 * hydraulics.DefaultKinematicViscosity / diameter
	flow := velocity * hydraulics.Area(diameter)

	result, err := hydraulics.PressureDrop(hydraulics.PressureDropInputs{
		Flow:     flow,
		Diameter: diameter,
		Length:   10,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.Transitional, result.Regime)
	assert.InDelta(t, 3000, result.Reynolds, 1e-9)

	// Swamee-Jain at Re=3000, ε/D=4.5e-4 — not the laminar 64/Re.
	assert.InDelta(t, 0.044952, result.FrictionFactor, 2e-4)
	assert.Greater(t, math.Abs(result.FrictionFactor-64.0/3000), 0.01)

	want := result.FrictionFactor * (10 / diameter) * hydraulics.DefaultDensity * velocity * velocity / 2
	assert.InDelta(t, want, result.DeltaPa, 1e-9)
}

func TestPressureDropSmoothPipe(t *testing.T) {
	// An explicit zero roughness is a smooth pipe, not the steel default.
	in := hydraulics.PressureDropInputs{Flow: 0.01, Diameter: 0.1, Length: 100}

	defaulted, err := hydraulics.PressureDrop(in)
	require.NoError(t, err)

	in.Roughness = f64(0)
	smooth, err := hydraulics.PressureDrop(in)
	require.NoError(t, err)

	assert.Less(t, smooth.FrictionFactor, defaulted.FrictionFactor)
	assert.Less(t, smooth.DeltaPa, defaulted.DeltaPa)

	wantF, _ := hydraulics.FrictionFactor(smooth.Reynolds, 0)
	assert.InDelta(t, wantF, smooth.FrictionFactor, 1e-15)
}

func TestPressureDropZeroFlow(t *testing.T) {
	result, err := hydraulics.PressureDrop(hydraulics.PressureDropInputs{
		Flow:     0,
		Diameter: 0.1,
		Length:   10,
	})
	require.NoError(t, err)

	assert.Zero(t, result.DeltaPa)
	assert.Zero(t, result.Velocity)
	assert.False(t, math.IsNaN(result.FrictionFactor))
	assert.Equal(t, domain.Laminar, result.Regime)
}

func TestPressureDropInvalidInput(t *testing.T) {
	base := hydraulics.PressureDropInputs{Flow: 0.01, Diameter: 0.1, Length: 10}

	cases := []struct {
		name   string
		mutate func(*hydraulics.PressureDropInputs)
	}{
		{"zero diameter", func(in *hydraulics.PressureDropInputs) { in.Diameter = 0 }},
		{"negative length", func(in *hydraulics.PressureDropInputs) { in.Length = -1 }},
		{"negative flow", func(in *hydraulics.PressureDropInputs) { in.Flow = -0.01 }},
		{"negative roughness", func(in *hydraulics.PressureDropInputs) { in.Roughness = f64(-1e-5) }},
		{"negative density", func(in *hydraulics.PressureDropInputs) { in.Density = f64(-1000) }},
		{"zero density", func(in *hydraulics.PressureDropInputs) { in.Density = f64(0) }},
		{"negative viscosity", func(in *hydraulics.PressureDropInputs) { in.Viscosity = f64(-1e-6) }},
		{"zero viscosity", func(in *hydraulics.PressureDropInputs) { in.Viscosity = f64(0) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := base
			tc.mutate(&in)
			_, err := hydraulics.PressureDrop(in)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestPressureDropDefaultsAppliedPerCall(t *testing.T) {
	in := hydraulics.PressureDropInputs{Flow: 0.001, Diameter: 0.05, Length: 5}

	first, err := hydraulics.PressureDrop(in)
	require.NoError(t, err)
	second, err := hydraulics.PressureDrop(in)
	require.NoError(t, err)

	// Same inputs, same result; the caller's record is never mutated.
	assert.Equal(t, first, second)
	assert.Nil(t, in.Roughness)
	assert.Nil(t, in.Density)
	assert.Nil(t, in.Viscosity)
}
