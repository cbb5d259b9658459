// Package domain defines core data models and errors shared across the app.
// It contains plain types and sentinel errors only; all computation lives in
// the engine packages.
package domain
