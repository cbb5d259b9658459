package units_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"metercli/internal/domain"
	"metercli/internal/units"
)

func TestConvertKnownValues(t *testing.T) {
	r := units.NewRegistry()

	tests := []struct {
		name  string
		value float64
		from  string
		to    string
		kind  domain.Kind
		want  float64
		tol   float64
	}{
		{"gpm to lpm", 100, "gpm", "lpm", domain.Flow, 378.5410, 0.001},
		{"psi to bar", 150, "psi", "bar", domain.Pressure, 10.3421, 0.001},
		{"celsius to fahrenheit", 25, "c", "f", domain.Temperature, 77.0, 1e-9},
		{"celsius to kelvin", 0, "c", "k", domain.Temperature, 273.15, 1e-9},
		{"fahrenheit to rankine", 32, "f", "r", domain.Temperature, 491.67, 1e-9},
		{"mmhg to psi", 760, "mmhg", "psi", domain.Pressure, 14.6959, 0.001},
		{"feet to inches", 1, "ft", "in", domain.Length, 12, 1e-9},
		{"m3h to lpm", 1, "m3h", "lpm", domain.Flow, 50.0 / 3.0, 1e-9},
		{"barrels per day to gpm", 1000, "bpd", "gpm", domain.Flow, 29.1667, 0.01},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := r.Convert(tc.value, tc.from, tc.to, tc.kind)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, tc.tol)
		})
	}
}

func TestConvertRoundTrip(t *testing.T) {
	r := units.NewRegistry()

	values := []float64{-40, 0, 0.5, 1, 123.456, 98765.4}
	for _, kind := range domain.Kinds() {
		symbols, err := r.Units(kind)
		require.NoError(t, err)
		for _, from := range symbols {
			for _, to := range symbols {
				for _, v := range values {
					there, err := r.Convert(v, from, to, kind)
					require.NoError(t, err)
					back, err := r.Convert(there, to, from, kind)
					require.NoError(t, err)
					assert.True(t, scalar.EqualWithinAbsOrRel(v, back, 1e-9, 1e-9),
						"%s: %g %s -> %s -> back, got %g", kind, v, from, to, back)
				}
			}
		}
	}
}

func TestConvertIdentityExact(t *testing.T) {
	r := units.NewRegistry()

	for _, kind := range domain.Kinds() {
		symbols, err := r.Units(kind)
		require.NoError(t, err)
		for _, u := range symbols {
			got, err := r.Convert(0.1, u, u, kind)
			require.NoError(t, err)
			assert.Equal(t, 0.1, got, "%s %s", kind, u)
		}
	}
}

func TestConvertKindIsolation(t *testing.T) {
	r := units.NewRegistry()

	cases := []struct {
		from, to string
		kind     domain.Kind
	}{
		{"gpm", "psi", domain.Flow},
		{"psi", "gpm", domain.Flow},
		{"gpm", "psi", domain.Pressure},
		{"c", "m", domain.Temperature},
		{"m", "c", domain.Length},
	}
	for _, tc := range cases {
		_, err := r.Convert(1, tc.from, tc.to, tc.kind)
		require.ErrorIs(t, err, domain.ErrKindMismatch, "%s -> %s as %s", tc.from, tc.to, tc.kind)
	}
}

func TestConvertUnknownUnit(t *testing.T) {
	r := units.NewRegistry()

	_, err := r.Convert(1, "furlong", "m", domain.Length)
	require.ErrorIs(t, err, domain.ErrUnknownUnit)

	_, err = r.Convert(1, "m", "cubit", domain.Length)
	require.ErrorIs(t, err, domain.ErrUnknownUnit)

	_, err = r.Convert(1, "j", "j", domain.Kind("energy"))
	require.ErrorIs(t, err, domain.ErrUnknownUnit)
}

func TestToSI(t *testing.T) {
	r := units.NewRegistry()

	tests := []struct {
		name  string
		value float64
		unit  string
		kind  domain.Kind
		want  float64
	}{
		{"6 inches to meters", 6, "in", domain.Length, 0.1524},
		{"60 lpm to m3/s", 60, "lpm", domain.Flow, 0.001},
		{"1 bar to Pa", 1, "bar", domain.Pressure, 1e5},
		{"25 C to K", 25, "c", domain.Temperature, 298.15},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := r.ToSI(tc.value, tc.unit, tc.kind)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-12)

			back, err := r.FromSI(got, tc.unit, tc.kind)
			require.NoError(t, err)
			assert.InDelta(t, tc.value, back, 1e-9)
		})
	}
}

func TestUnitsListing(t *testing.T) {
	r := units.NewRegistry()

	flow, err := r.Units(domain.Flow)
	require.NoError(t, err)
	assert.Equal(t, []string{"bpd", "cfm", "gpm", "lpm", "m3h"}, flow)

	temps, err := r.Units(domain.Temperature)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "f", "k", "r"}, temps)

	_, err = r.Units(domain.Kind("energy"))
	require.ErrorIs(t, err, domain.ErrUnknownUnit)
}
