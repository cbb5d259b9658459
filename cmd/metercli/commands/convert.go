package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"metercli/internal/domain"
)

func convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <value> <from-unit> <to-unit> <kind>",
		Short: "Convert a value between two units of the same kind",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid value %q", args[0])
			}
			kind, err := domain.ParseKind(args[3])
			if err != nil {
				return err
			}

			result, err := appCtx.Units.Convert(value, args[1], args[2], kind)
			if err != nil {
				return err
			}
			fmt.Printf("%g %s = %.4f %s\n", value, args[1], result, args[2])
			return nil
		},
	}
}
