package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate the db",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, cleanup, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		zap.S().Info("Db migrated")
		return nil
	},
}
