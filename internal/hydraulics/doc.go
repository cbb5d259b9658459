// Package hydraulics implements the hydraulic calculation engine.
//
// # Overview
//
// Two operations, both pure functions over SI-normalized inputs:
//
//   - SolveFlowState derives flow rate from velocity (or vice versa) through
//     the continuity relation Q = V·A for a circular pipe.
//   - PressureDrop evaluates the Darcy-Weisbach equation
//     ΔP = f·(L/D)·(ρV²/2), estimating the friction factor from the Reynolds
//     number and relative roughness.
//
// The friction factor is 64/Re in the laminar regime (Re < 2300) and the
// explicit Swamee-Jain approximation to Colebrook-White otherwise, so no
// iterative root-finding is required. Flow in the transitional band
// (2300 ≤ Re < 4000) uses the turbulent estimate but is flagged as
// transitional in the result.
//
// Unit handling happens at the caller's boundary (see internal/units); this
// package works in m, m/s, m³/s, kg/m³, m²/s and Pa throughout.
package hydraulics
