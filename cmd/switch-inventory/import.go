package main

import (
	"fmt"
	"os"

	"github.com/kubev2v/switch-inventory/internal/service"
	"github.com/spf13/cobra"
	"k8s.io/utils/clock"
)

var importCmd = &cobra.Command{
	Use:     "import FILE",
	Short:   "Import the switches of an inventory workbook into the database",
	Example: "import /path/to/inventario.xlsx",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, cleanup, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening %s: %w", args[0], err)
		}
		defer file.Close()

		result, err := service.NewSwitchService(store, clock.RealClock{}).ImportSwitches(cmd.Context(), file)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%d switches imported\n", result.Imported)
		for _, e := range result.Errors {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", e)
		}
		return nil
	},
}
