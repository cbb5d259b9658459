// Package gas implements the gas property engine: an AGA8-style report of
// natural-gas mixture properties from a molar composition plus pressure and
// temperature.
//
// # Overview
//
// A Calculator is built once from an embedded component property table
// (molecular weights, critical properties, acentric factors, heating values).
// Report normalizes the composition to 100 mol%, mixes pseudo-critical
// properties by mole fraction, solves a simplified Peng-Robinson equation of
// state for the compressibility factor by Newton iteration, and derives
// density, heating values and the Wobbe index.
//
// The component table is read-only after construction, so a Calculator is
// safe for concurrent use.
//
// # Errors
//
// domain.ErrUnknownComponent for composition entries not in the table;
// domain.ErrInvalidInput for an empty composition, negative gauge pressure or
// a temperature below absolute zero.
package gas
