// Package units implements the unit conversion engine.
//
// # Overview
//
// A Registry holds one conversion table per quantity kind. Flow, pressure and
// length units carry a multiplicative factor to the kind's base unit (L/min,
// Pa, m); temperature units carry an affine rule to Kelvin, since °C/°F/K/°R
// are not related by pure scaling. Conversion always round-trips through the
// base value so there is a single normalization path, shared with the
// hydraulic engine via ToSI/FromSI.
//
// # Errors
//
// domain.ErrUnknownUnit is returned when a symbol is not registered under the
// stated kind; domain.ErrKindMismatch when the symbol exists but belongs to a
// different kind. Cross-kind conversion is never permitted.
//
// The registry is built once and read-only afterwards, so it is safe for
// concurrent readers without synchronization.
package units
