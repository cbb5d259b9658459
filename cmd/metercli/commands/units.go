package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"metercli/internal/domain"
)

func unitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units [kind]",
		Short: "List quantity kinds and their unit symbols",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := domain.Kinds()
			if len(args) == 1 {
				kind, err := domain.ParseKind(args[0])
				if err != nil {
					return err
				}
				kinds = []domain.Kind{kind}
			}

			for _, kind := range kinds {
				symbols, err := appCtx.Units.Units(kind)
				if err != nil {
					return err
				}
				fmt.Printf("%-12s %s\n", kind, strings.Join(symbols, " "))
			}
			return nil
		},
	}
}
