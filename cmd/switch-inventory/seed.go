package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo inventory",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, cleanup, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		if err := store.Seed(cmd.Context()); err != nil {
			return fmt.Errorf("seeding inventory: %w", err)
		}

		zap.S().Info("Demo inventory loaded")
		return nil
	},
}
