package main

import (
	"context"
	"fmt"

	"github.com/kubev2v/switch-inventory/internal/config"
	"github.com/kubev2v/switch-inventory/internal/store"
	"github.com/kubev2v/switch-inventory/pkg/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:          "switch-inventory",
	Short:        "Switch inventory service with natural language queries.",
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(seedCmd)
}

// setup reads the configuration, installs the logger and opens a migrated store.
// The returned function closes the store and flushes the logger.
func setup(ctx context.Context) (*config.Config, store.Store, func(), error) {
	cfg, err := config.New()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("reading configuration: %w", err)
	}

	flush := log.Setup(cfg.Service.LogLevel)
	zap.S().Infof("Using config: %s", cfg)

	zap.S().Info("Initializing data store")
	db, err := store.InitDB(cfg)
	if err != nil {
		flush()
		return nil, nil, nil, fmt.Errorf("initializing data store: %w", err)
	}

	s := store.NewStore(db)
	cleanup := func() {
		_ = s.Close()
		flush()
	}

	if err := s.InitialMigration(ctx); err != nil {
		cleanup()
		return nil, nil, nil, fmt.Errorf("running initial migration: %w", err)
	}

	return cfg, s, cleanup, nil
}
