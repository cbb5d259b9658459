package app

import (
	"metercli/internal/gas"
	"metercli/internal/units"
)

type App struct {
	Units *units.Registry
	Gas   *gas.Calculator
}

func New(registry *units.Registry, calc *gas.Calculator) *App {
	return &App{
		Units: registry,
		Gas:   calc,
	}
}
