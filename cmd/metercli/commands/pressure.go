package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"metercli/internal/domain"
	"metercli/internal/hydraulics"
)

func pressureCmd() *cobra.Command {
	var (
		roughnessMM  float64
		density      float64
		viscosity    float64
		diameterUnit string
		flowUnit     string
	)

	cmd := &cobra.Command{
		Use:   "pressure <flow-rate> <diameter> <length>",
		Short: "Darcy-Weisbach pressure drop for a pipe run",
		Long: "Compute the Darcy-Weisbach pressure drop for a straight pipe. " +
			"Length is in meters; diameter and flow-rate units are set by flags. " +
			"Fluid defaults are water at 20 °C and commercial-steel roughness.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			flowRate, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid flow rate %q", args[0])
			}
			diameter, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid diameter %q", args[1])
			}
			length, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid length %q", args[2])
			}

			flowSI, err := appCtx.Units.ToSI(flowRate, flowUnit, domain.Flow)
			if err != nil {
				return err
			}
			diameterM, err := appCtx.Units.ToSI(diameter, diameterUnit, domain.Length)
			if err != nil {
				return err
			}

			roughnessM := roughnessMM / 1000
			result, err := hydraulics.PressureDrop(hydraulics.PressureDropInputs{
				Flow:      flowSI,
				Diameter:  diameterM,
				Length:    length,
				Roughness: &roughnessM,
				Density:   &density,
				Viscosity: &viscosity,
			})
			if err != nil {
				return err
			}
			return printPressureDrop(result)
		},
	}

	cmd.Flags().Float64Var(&roughnessMM, "roughness", 0.045, "absolute pipe roughness, mm")
	cmd.Flags().Float64Var(&density, "density", hydraulics.DefaultDensity, "fluid density, kg/m³")
	cmd.Flags().Float64Var(&viscosity, "viscosity", hydraulics.DefaultKinematicViscosity, "kinematic viscosity, m²/s")
	cmd.Flags().StringVar(&diameterUnit, "diameter-unit", "m", "diameter unit (m, in, mm, cm, ft)")
	cmd.Flags().StringVar(&flowUnit, "flow-unit", "m3h", "flow rate unit (m3h, gpm, lpm, cfm, bpd)")
	return cmd
}

func printPressureDrop(result domain.PressureDropResult) error {
	dropPSI, err := appCtx.Units.FromSI(result.DeltaPa, "psi", domain.Pressure)
	if err != nil {
		return err
	}
	dropBar, err := appCtx.Units.FromSI(result.DeltaPa, "bar", domain.Pressure)
	if err != nil {
		return err
	}

	fmt.Println("Pressure Drop Calculation Results:")
	fmt.Printf("  Pressure Drop: %.0f Pa (%.2f psi, %.4f bar)\n", result.DeltaPa, dropPSI, dropBar)
	fmt.Printf("  Velocity: %.2f m/s\n", result.Velocity)
	fmt.Printf("  Reynolds Number: %.0f\n", result.Reynolds)
	fmt.Printf("  Friction Factor: %.6f\n", result.FrictionFactor)
	fmt.Printf("  Flow Regime: %s\n", result.Regime)
	return nil
}
