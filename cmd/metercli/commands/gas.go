package commands

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"metercli/internal/domain"
)

func gasCmd() *cobra.Command {
	var (
		components  []string
		pressure    float64
		temperature float64
	)

	cmd := &cobra.Command{
		Use:   "gas --component <name>=<mol%> [--component ...]",
		Short: "AGA8-style gas property report from a molar composition",
		Long: "Compute a natural-gas property report (molecular weight, specific " +
			"gravity, compressibility factor, density, heating values, Wobbe index) " +
			"from a molar composition at the given gauge pressure and temperature.",
		RunE: func(cmd *cobra.Command, args []string) error {
			comp, err := parseComposition(components)
			if err != nil {
				return err
			}
			report, err := appCtx.Gas.Report(comp, pressure, temperature)
			if err != nil {
				return err
			}
			fmt.Print(renderGasReport(report))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&components, "component", nil, "component as name=mol%, repeatable")
	cmd.Flags().Float64Var(&pressure, "pressure", 0, "gauge pressure, barg")
	cmd.Flags().Float64Var(&temperature, "temperature", 15, "temperature, °C")
	return cmd
}

func parseComposition(entries []string) (domain.Composition, error) {
	comp := make(domain.Composition, len(entries))
	for _, entry := range entries {
		name, value, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("invalid component %q, want name=mol%%", entry)
		}
		pct, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid mole percentage in %q", entry)
		}
		comp[strings.ToLower(strings.TrimSpace(name))] = pct
	}
	return comp, nil
}

func renderGasReport(r domain.GasReport) string {
	var b strings.Builder
	rule := strings.Repeat("=", 72)
	sep := strings.Repeat("-", 40)

	fmt.Fprintf(&b, "%s\n%28sGAS PROPERTY REPORT\n%s\n", rule, "", rule)

	fmt.Fprintf(&b, "\nINPUT CONDITIONS:\n%s\n", sep)
	fmt.Fprintf(&b, "Pressure:     %.3f barg (%.3f bara)\n", r.Conditions.PressureBarg, r.Conditions.PressureBara)
	fmt.Fprintf(&b, "Temperature:  %.2f °C (%.2f K)\n", r.Conditions.TemperatureC, r.Conditions.TemperatureK)

	fmt.Fprintf(&b, "\nGAS COMPOSITION (mol%%):\n%s\n", sep)
	names := make([]string, 0, len(r.Conditions.Composition))
	for name := range r.Conditions.Composition {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if pct := r.Conditions.Composition[name]; pct > 0 {
			fmt.Fprintf(&b, "%-18s: %8.4f%%\n", name, pct)
		}
	}

	fmt.Fprintf(&b, "\nBASIC PROPERTIES:\n%s\n", sep)
	fmt.Fprintf(&b, "Molecular Weight:        %.3f g/mol\n", r.Properties.MolecularWeight)
	fmt.Fprintf(&b, "Specific Gravity:        %.4f (relative to air)\n", r.Properties.SpecificGravity)
	fmt.Fprintf(&b, "Compressibility Factor:  %.6f\n", r.Properties.ZFactor)
	fmt.Fprintf(&b, "Density (actual):        %.3f kg/m³\n", r.Properties.Density)
	fmt.Fprintf(&b, "Density (std 15 °C):     %.3f kg/m³\n", r.Properties.DensityStd)

	fmt.Fprintf(&b, "\nHEATING VALUES:\n%s\n", sep)
	fmt.Fprintf(&b, "Higher Heating Value:    %.2f MJ/m³\n", r.Heating.Higher)
	fmt.Fprintf(&b, "Lower Heating Value:     %.2f MJ/m³\n", r.Heating.Lower)
	fmt.Fprintf(&b, "Wobbe Index:             %.2f MJ/m³\n", r.Heating.Wobbe)

	fmt.Fprintf(&b, "\nCRITICAL PROPERTIES:\n%s\n", sep)
	fmt.Fprintf(&b, "Critical Temperature:    %.2f K (%.2f °C)\n", r.Critical.TemperatureK, r.Critical.TemperatureK-273.15)
	fmt.Fprintf(&b, "Critical Pressure:       %.3f MPa (%.1f bar)\n", r.Critical.PressureMPa, r.Critical.PressureMPa*10)
	fmt.Fprintf(&b, "Critical Density:        %.1f kg/m³\n", r.Critical.Density)

	fmt.Fprintf(&b, "\nADDITIONAL PROPERTIES:\n%s\n", sep)
	fmt.Fprintf(&b, "Volume Factor:           %.6f\n", r.VolumeFactor)
	fmt.Fprintf(&b, "Reduced Temperature:     %.4f\n", r.ReducedT)
	fmt.Fprintf(&b, "Reduced Pressure:        %.4f\n", r.ReducedP)

	fmt.Fprintf(&b, "\n%s\n", rule)
	fmt.Fprintf(&b, "Standard conditions: 15 °C (288.15 K), 1.01325 bara\n%s\n", rule)
	return b.String()
}
