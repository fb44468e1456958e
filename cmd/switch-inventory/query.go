package main

import (
	"fmt"
	"strings"

	"github.com/kubev2v/switch-inventory/internal/resolver"
	"github.com/kubev2v/switch-inventory/internal/service"
	"github.com/spf13/cobra"
)

var callerID string

var queryCmd = &cobra.Command{
	Use:     "query QUESTION",
	Short:   "Answer a question against the local database",
	Example: `query "Quantos switches Cisco estão ativos?"`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, cleanup, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		srv := service.NewQueryService(resolver.New(store))
		answer, err := srv.Ask(cmd.Context(), strings.Join(args, " "), callerID)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), answer.Response)
		return nil
	},
}

func init() {
	queryCmd.Flags().StringVar(&callerID, "user", "", "Id of the caller asking the question")
}
