package main

import (
	"os"

	"github.com/kubev2v/switch-inventory/internal/cli"
	"github.com/spf13/cobra"
)

func main() {
	command := NewSwitchCtlCommand()
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewSwitchCtlCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "switchctl [flags] [options]",
		Short: "switchctl queries a switch inventory server.",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
			os.Exit(1)
		},
	}
	cmd.AddCommand(cli.NewCmdAsk())
	cmd.AddCommand(cli.NewCmdGet())
	cmd.AddCommand(cli.NewCmdDelete())
	cmd.AddCommand(cli.NewCmdImport())

	return cmd
}
