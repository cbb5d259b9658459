package commands

import (
	"github.com/spf13/cobra"

	"metercli/internal/app"
	"metercli/internal/gas"
	"metercli/internal/units"
)

var appCtx *app.App

func Execute() error {
	root := &cobra.Command{
		Use:               "metercli",
		Short:             "Metering engineer tool suite",
		Version:           "1.0.0",
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			calc, err := gas.NewCalculator()
			if err != nil {
				return err
			}
			appCtx = app.New(units.NewRegistry(), calc)
			return nil
		},
	}

	root.AddCommand(convertCmd(), flowCmd(), pressureCmd(), gasCmd(), unitsCmd())
	return root.Execute()
}
