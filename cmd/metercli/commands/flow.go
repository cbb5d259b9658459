package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"metercli/internal/domain"
	"metercli/internal/hydraulics"
)

func flowCmd() *cobra.Command {
	var (
		velocity     float64
		flowRate     float64
		diameterUnit string
		flowUnit     string
	)

	cmd := &cobra.Command{
		Use:   "flow <diameter>",
		Short: "Solve flow rate or velocity from pipe diameter",
		Long: "Solve the continuity relation Q = V·A for a circular pipe. " +
			"Supply the diameter plus exactly one of --velocity or --flow-rate.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			diameter, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid diameter %q", args[0])
			}
			diameterM, err := appCtx.Units.ToSI(diameter, diameterUnit, domain.Length)
			if err != nil {
				return err
			}

			var velArg, flowArg *float64
			if cmd.Flags().Changed("velocity") {
				velArg = &velocity
			}
			if cmd.Flags().Changed("flow-rate") {
				flowSI, err := appCtx.Units.ToSI(flowRate, flowUnit, domain.Flow)
				if err != nil {
					return err
				}
				flowArg = &flowSI
			}

			state, err := hydraulics.SolveFlowState(diameterM, velArg, flowArg)
			if err != nil {
				return err
			}
			return printFlowState(state)
		},
	}

	cmd.Flags().Float64Var(&velocity, "velocity", 0, "velocity, m/s")
	cmd.Flags().Float64Var(&flowRate, "flow-rate", 0, "flow rate, in --flow-unit")
	cmd.Flags().StringVar(&diameterUnit, "diameter-unit", "m", "diameter unit (m, in, mm, cm, ft)")
	cmd.Flags().StringVar(&flowUnit, "flow-unit", "m3h", "flow rate unit (m3h, gpm, lpm, cfm, bpd)")
	return cmd
}

func printFlowState(state domain.FlowState) error {
	flowM3h, err := appCtx.Units.FromSI(state.Flow, "m3h", domain.Flow)
	if err != nil {
		return err
	}
	flowGPM, err := appCtx.Units.FromSI(state.Flow, "gpm", domain.Flow)
	if err != nil {
		return err
	}

	fmt.Println("Flow Calculation Results:")
	fmt.Printf("  Diameter: %.4f m\n", state.Diameter)
	fmt.Printf("  Pipe Area: %.6f m²\n", state.Area)
	fmt.Printf("  Flow Rate: %.2f m³/h (%.2f GPM)\n", flowM3h, flowGPM)
	fmt.Printf("  Velocity: %.2f m/s\n", state.Velocity)
	return nil
}
