package units

import (
	"fmt"
	"sort"
	"strings"

	"metercli/internal/domain"
)

// affine converts to Kelvin as (value + pre) * scale; the inverse is
// value = kelvin/scale - pre. Keeping the pre-offset form matches the exact
// reference formulas (C + 273.15, (F + 459.67) * 5/9, R * 5/9).
type affine struct {
	pre   float64
	scale float64
}

func (a affine) toKelvin(v float64) float64   { return (v + a.pre) * a.scale }
func (a affine) fromKelvin(k float64) float64 { return k/a.scale - a.pre }

// Registry is the process-wide conversion table set. Build it with
// NewRegistry; it is never mutated afterwards.
type Registry struct {
	linear map[domain.Kind]map[string]float64 // symbol -> factor to kind base
	temps  map[string]affine                  // symbol -> affine rule to Kelvin
	siBase map[domain.Kind]float64            // kind base unit -> SI factor
}

// NewRegistry builds the full unit vocabulary.
//
// Bases: flow L/min, pressure Pa, length m, temperature K. The factors follow
// the values used in metering practice (1 gpm = 3.78541 L/min, 1 psi =
// 6894.76 Pa, 1 mmHg = 133.322 Pa, 1 bbl/day = 0.110408 L/min).
func NewRegistry() *Registry {
	return &Registry{
		linear: map[domain.Kind]map[string]float64{
			domain.Flow: {
				"gpm": 3.78541,    // US gallons per minute
				"lpm": 1.0,        // liters per minute (base)
				"cfm": 28.316847,  // cubic feet per minute
				"m3h": 50.0 / 3.0, // cubic meters per hour
				"bpd": 0.110408,   // barrels per day
			},
			domain.Pressure: {
				"psi":  6894.76, // pounds per square inch
				"bar":  1e5,
				"kpa":  1e3,
				"mpa":  1e6,
				"mmhg": 133.322, // millimeters of mercury
			},
			domain.Length: {
				"ft": 0.3048,
				"m":  1.0, // base
				"in": 0.0254,
				"cm": 0.01,
				"mm": 0.001,
			},
		},
		temps: map[string]affine{
			"c": {pre: 273.15, scale: 1.0},
			"f": {pre: 459.67, scale: 5.0 / 9.0},
			"k": {pre: 0, scale: 1.0},
			"r": {pre: 0, scale: 5.0 / 9.0},
		},
		siBase: map[domain.Kind]float64{
			domain.Flow:     1.0 / 60000.0, // L/min -> m³/s
			domain.Pressure: 1.0,
			domain.Length:   1.0,
		},
	}
}

// Convert translates value from one unit to another within a single kind.
// Both symbols must be registered under kind; a symbol that belongs to a
// different kind yields domain.ErrKindMismatch.
func (r *Registry) Convert(value float64, from, to string, kind domain.Kind) (float64, error) {
	from = normalize(from)
	to = normalize(to)

	if from == to {
		// Identity conversions are exact, not a factor round-trip; the lookup
		// still runs so unknown symbols fail.
		if err := r.check(from, kind); err != nil {
			return 0, err
		}
		return value, nil
	}

	if kind == domain.Temperature {
		af, err := r.tempRule(from)
		if err != nil {
			return 0, err
		}
		at, err := r.tempRule(to)
		if err != nil {
			return 0, err
		}
		return at.fromKelvin(af.toKelvin(value)), nil
	}

	table, ok := r.linear[kind]
	if !ok {
		return 0, fmt.Errorf("%w: kind %q", domain.ErrUnknownUnit, kind)
	}
	ff, err := r.factor(table, from, kind)
	if err != nil {
		return 0, err
	}
	ft, err := r.factor(table, to, kind)
	if err != nil {
		return 0, err
	}

	// Explicit base round-trip rather than a fused ratio; same path ToSI uses.
	base := value * ff
	return base / ft, nil
}

// ToSI normalizes a value to the kind's SI unit: m³/s, Pa, K or m.
func (r *Registry) ToSI(value float64, unit string, kind domain.Kind) (float64, error) {
	unit = normalize(unit)

	if kind == domain.Temperature {
		a, err := r.tempRule(unit)
		if err != nil {
			return 0, err
		}
		return a.toKelvin(value), nil
	}

	table, ok := r.linear[kind]
	if !ok {
		return 0, fmt.Errorf("%w: kind %q", domain.ErrUnknownUnit, kind)
	}
	f, err := r.factor(table, unit, kind)
	if err != nil {
		return 0, err
	}
	return value * f * r.siBase[kind], nil
}

// FromSI is the inverse of ToSI, for presenting SI results in caller units.
func (r *Registry) FromSI(value float64, unit string, kind domain.Kind) (float64, error) {
	unit = normalize(unit)

	if kind == domain.Temperature {
		a, err := r.tempRule(unit)
		if err != nil {
			return 0, err
		}
		return a.fromKelvin(value), nil
	}

	table, ok := r.linear[kind]
	if !ok {
		return 0, fmt.Errorf("%w: kind %q", domain.ErrUnknownUnit, kind)
	}
	f, err := r.factor(table, unit, kind)
	if err != nil {
		return 0, err
	}
	return value / (f * r.siBase[kind]), nil
}

// Units lists the symbols registered under kind, sorted.
func (r *Registry) Units(kind domain.Kind) ([]string, error) {
	var symbols []string
	if kind == domain.Temperature {
		for s := range r.temps {
			symbols = append(symbols, s)
		}
	} else {
		table, ok := r.linear[kind]
		if !ok {
			return nil, fmt.Errorf("%w: kind %q", domain.ErrUnknownUnit, kind)
		}
		for s := range table {
			symbols = append(symbols, s)
		}
	}
	sort.Strings(symbols)
	return symbols, nil
}

// check verifies that a symbol is registered under kind.
func (r *Registry) check(symbol string, kind domain.Kind) error {
	if kind == domain.Temperature {
		_, err := r.tempRule(symbol)
		return err
	}
	table, ok := r.linear[kind]
	if !ok {
		return fmt.Errorf("%w: kind %q", domain.ErrUnknownUnit, kind)
	}
	_, err := r.factor(table, symbol, kind)
	return err
}

// factor resolves a symbol within one linear kind table. When the symbol is
// registered under some other kind the failure is a kind mismatch, not an
// unknown unit.
func (r *Registry) factor(table map[string]float64, symbol string, kind domain.Kind) (float64, error) {
	if f, ok := table[symbol]; ok {
		return f, nil
	}
	if other, ok := r.owningKind(symbol); ok {
		return 0, fmt.Errorf("%w: %q is a %s unit, not %s", domain.ErrKindMismatch, symbol, other, kind)
	}
	return 0, fmt.Errorf("%w: %q (kind %s)", domain.ErrUnknownUnit, symbol, kind)
}

func (r *Registry) tempRule(symbol string) (affine, error) {
	if a, ok := r.temps[symbol]; ok {
		return a, nil
	}
	if other, ok := r.owningKind(symbol); ok {
		return affine{}, fmt.Errorf("%w: %q is a %s unit, not %s",
			domain.ErrKindMismatch, symbol, other, domain.Temperature)
	}
	return affine{}, fmt.Errorf("%w: %q (kind %s)", domain.ErrUnknownUnit, symbol, domain.Temperature)
}

// owningKind scans all kinds for a symbol, for mismatch diagnostics.
func (r *Registry) owningKind(symbol string) (domain.Kind, bool) {
	for kind, table := range r.linear {
		if _, ok := table[symbol]; ok {
			return kind, true
		}
	}
	if _, ok := r.temps[symbol]; ok {
		return domain.Temperature, true
	}
	return "", false
}

func normalize(symbol string) string {
	return strings.ToLower(strings.TrimSpace(symbol))
}
