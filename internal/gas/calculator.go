package gas

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"metercli/internal/domain"
)

// Reference constants.
const (
	gasConstant     = 8.314   // J/(mol·K)
	molarGasKmol    = 8314.0  // J/(kmol·K), for density with MW in kg/kmol
	airMolWeight    = 28.964  // g/mol
	atmosphereBar   = 1.01325 // bara
	stdTemperatureK = 288.15  // 15 °C standard reference
	absoluteZeroC   = -273.15
)

// Calculator evaluates gas mixture properties against the embedded component
// table. Construct with NewCalculator; safe for concurrent use afterwards.
type Calculator struct {
	components map[string]Component
}

// NewCalculator loads the component property table.
func NewCalculator() (*Calculator, error) {
	table, err := loadComponents()
	if err != nil {
		return nil, err
	}
	return &Calculator{components: table}, nil
}

// Components lists the known component names, sorted.
func (c *Calculator) Components() []string {
	names := make([]string, 0, len(c.components))
	for name := range c.components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Normalize scales a composition so its mole percentages sum to 100. It
// rejects unknown components and a zero total.
func (c *Calculator) Normalize(comp domain.Composition) (domain.Composition, error) {
	if len(comp) == 0 {
		return nil, fmt.Errorf("%w: composition is empty", domain.ErrInvalidInput)
	}
	values := make([]float64, 0, len(comp))
	for name, pct := range comp {
		if _, ok := c.components[name]; !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownComponent, name)
		}
		if pct < 0 {
			return nil, fmt.Errorf("%w: negative fraction for %q", domain.ErrInvalidInput, name)
		}
		values = append(values, pct)
	}
	total := floats.Sum(values)
	if total == 0 {
		return nil, fmt.Errorf("%w: composition total is zero", domain.ErrInvalidInput)
	}

	out := make(domain.Composition, len(comp))
	for name, pct := range comp {
		out[name] = pct / total * 100
	}
	return out, nil
}

// MolecularWeight returns the mole-fraction-weighted molecular weight, g/mol.
// The composition must already be normalized.
func (c *Calculator) MolecularWeight(comp domain.Composition) float64 {
	mw := 0.0
	for name, pct := range comp {
		mw += pct / 100 * c.components[name].MolecularWeight
	}
	return mw
}

// SpecificGravity returns the gravity relative to air.
func (c *Calculator) SpecificGravity(comp domain.Composition) float64 {
	return c.MolecularWeight(comp) / airMolWeight
}

// criticalProperties mixes pseudo-critical properties by mole fraction.
// Components without critical data contribute nothing, matching the
// reference tables.
func (c *Calculator) criticalProperties(comp domain.Composition) domain.CriticalProperties {
	var crit domain.CriticalProperties
	for name, pct := range comp {
		x := pct / 100
		data := c.components[name]
		crit.TemperatureK += x * data.CriticalTempK
		crit.PressureMPa += x * data.CriticalPMPa
		crit.Density += x * data.CriticalDensity
	}
	return crit
}

func (c *Calculator) acentricFactor(comp domain.Composition) float64 {
	omega := 0.0
	for name, pct := range comp {
		omega += pct / 100 * c.components[name].Acentric
	}
	return omega
}

// compressibility solves a simplified Peng-Robinson cubic for the Z factor by
// Newton iteration from the ideal-gas starting point.
func (c *Calculator) compressibility(pressureBara, tempK float64, comp domain.Composition) float64 {
	crit := c.criticalProperties(comp)
	// No critical data for any component in the mix; treat as ideal gas.
	if crit.TemperatureK <= 0 || crit.PressureMPa <= 0 {
		return 1
	}
	tr := tempK / crit.TemperatureK
	omega := c.acentricFactor(comp)

	kappa := 0.37464 + 1.54226*omega - 0.26992*omega*omega
	alpha := 1 + kappa*(1-math.Sqrt(tr))
	alpha *= alpha

	a := 0.45724 * gasConstant * gasConstant * crit.TemperatureK * crit.TemperatureK / crit.PressureMPa * alpha
	b := 0.07780 * gasConstant * crit.TemperatureK / crit.PressureMPa

	rt := gasConstant * tempK
	c2 := 1 - b*pressureBara/rt
	c1 := a * pressureBara / (rt * rt)
	c0 := a * b * pressureBara * pressureBara / (rt * rt * rt)

	z := 1.0
	for i := 0; i < 10; i++ {
		f := z*z*z - c2*z*z + c1*z - c0
		df := 3*z*z - 2*c2*z + c1
		if math.Abs(df) <= 1e-10 {
			break
		}
		next := z - f/df
		if math.Abs(next-z) < 1e-8 {
			z = next
			break
		}
		z = next
	}
	return math.Max(z, 0.1)
}

// density returns the gas density, kg/m³, from ρ = P·M/(Z·R·T).
func (c *Calculator) density(pressureBara, tempK, zFactor float64, comp domain.Composition) float64 {
	pressurePa := pressureBara * 1e5
	return pressurePa * c.MolecularWeight(comp) / (zFactor * molarGasKmol * tempK)
}

// heatingValues returns the higher and lower heating values, MJ/m³ at STP.
func (c *Calculator) heatingValues(comp domain.Composition) (hhv, lhv float64) {
	for name, pct := range comp {
		x := pct / 100
		data := c.components[name]
		hhv += x * data.HigherHeating
		lhv += x * data.LowerHeating
	}
	return hhv, lhv
}

// Report evaluates the full gas report at the given gauge pressure (barg) and
// temperature (°C).
func (c *Calculator) Report(comp domain.Composition, pressureBarg, tempC float64) (domain.GasReport, error) {
	if pressureBarg < 0 {
		return domain.GasReport{}, fmt.Errorf("%w: pressure must be non-negative, got %g barg", domain.ErrInvalidInput, pressureBarg)
	}
	if tempC < absoluteZeroC {
		return domain.GasReport{}, fmt.Errorf("%w: temperature %g °C is below absolute zero", domain.ErrInvalidInput, tempC)
	}
	normalized, err := c.Normalize(comp)
	if err != nil {
		return domain.GasReport{}, err
	}

	pressureBara := pressureBarg + atmosphereBar
	tempK := tempC - absoluteZeroC

	z := c.compressibility(pressureBara, tempK, normalized)
	zStd := c.compressibility(atmosphereBar, stdTemperatureK, normalized)
	hhv, lhv := c.heatingValues(normalized)
	sg := c.SpecificGravity(normalized)
	crit := c.criticalProperties(normalized)

	var reducedT, reducedP float64
	if crit.TemperatureK > 0 && crit.PressureMPa > 0 {
		reducedT = tempK / crit.TemperatureK
		reducedP = pressureBara / crit.PressureMPa
	}

	return domain.GasReport{
		Conditions: domain.GasConditions{
			PressureBarg: pressureBarg,
			PressureBara: pressureBara,
			TemperatureC: tempC,
			TemperatureK: tempK,
			Composition:  normalized,
		},
		Properties: domain.GasProperties{
			MolecularWeight: c.MolecularWeight(normalized),
			SpecificGravity: sg,
			ZFactor:         z,
			Density:         c.density(pressureBara, tempK, z, normalized),
			DensityStd:      c.density(atmosphereBar, stdTemperatureK, zStd, normalized),
		},
		Heating: domain.HeatingValues{
			Higher: hhv,
			Lower:  lhv,
			Wobbe:  hhv / math.Sqrt(sg),
		},
		Critical:     crit,
		VolumeFactor: 1 / z,
		ReducedT:     reducedT,
		ReducedP:     reducedP,
	}, nil
}
