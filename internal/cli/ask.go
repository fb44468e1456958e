package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type AskOptions struct {
	GlobalOptions

	out io.Writer
}

func DefaultAskOptions() *AskOptions {
	return &AskOptions{
		GlobalOptions: DefaultGlobalOptions(),
		out:           os.Stdout,
	}
}

func NewCmdAsk() *cobra.Command {
	o := DefaultAskOptions()
	cmd := &cobra.Command{
		Use:     "ask QUESTION",
		Short:   "Ask a question about the switch inventory.",
		Example: `ask "Quantos switches Cisco estão ativos?"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), args)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *AskOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)
}

func (o *AskOptions) Complete(cmd *cobra.Command, args []string) error {
	if err := o.GlobalOptions.Complete(cmd, args); err != nil {
		return err
	}
	o.out = cmd.OutOrStdout()
	return nil
}

func (o *AskOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	if strings.TrimSpace(strings.Join(args, " ")) == "" {
		return fmt.Errorf("the question cannot be empty")
	}
	return nil
}

func (o *AskOptions) Run(ctx context.Context, args []string) error {
	c, err := o.Client()
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}

	resp, err := c.Ask(ctx, strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("asking question: %w", err)
	}

	fmt.Fprintln(o.out, resp.Response)
	return nil
}
