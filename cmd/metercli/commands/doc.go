// Package commands defines the metercli CLI and wires the engines for
// subcommands.
//
// Commands
//
//   - convert   Convert a value between two units of the same kind
//   - flow      Solve flow rate or velocity from pipe diameter
//   - pressure  Darcy-Weisbach pressure drop for a pipe run
//   - gas       AGA8-style gas property report from a molar composition
//   - units     List quantity kinds and their unit symbols
//
// # Implementation
//
// The root command builds the unit registry and the gas calculator before any
// subcommand runs, so handlers share one read-only app context. Engines never
// print; commands format results and return errors for a one-line diagnostic
// plus non-zero exit status.
package commands
