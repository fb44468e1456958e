package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type ImportOptions struct {
	GlobalOptions

	out io.Writer
}

func DefaultImportOptions() *ImportOptions {
	return &ImportOptions{
		GlobalOptions: DefaultGlobalOptions(),
		out:           os.Stdout,
	}
}

func NewCmdImport() *cobra.Command {
	o := DefaultImportOptions()
	cmd := &cobra.Command{
		Use:     "import FILE",
		Short:   "Import the switches of an inventory workbook.",
		Example: "import /path/to/inventario.xlsx",
		Args:    cobra.ExactArgs(1),
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

func (o *ImportOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)
}

func (o *ImportOptions) Complete(cmd *cobra.Command, args []string) error {
	if err := o.GlobalOptions.Complete(cmd, args); err != nil {
		return err
	}
	o.out = cmd.OutOrStdout()
	return nil
}

func (o *ImportOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	if ext := strings.ToLower(filepath.Ext(args[0])); ext != ".xlsx" {
		return fmt.Errorf("unsupported file type %q: expected an .xlsx workbook", ext)
	}
	return nil
}

func (o *ImportOptions) Run(ctx context.Context, args []string) error {
	c, err := o.Client()
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}

	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening %s: %w", args[0], err)
	}
	defer file.Close()

	result, err := c.ImportSwitches(ctx, filepath.Base(args[0]), file)
	if err != nil {
		return fmt.Errorf("importing %s: %w", args[0], err)
	}

	fmt.Fprintf(o.out, "%d switches imported\n", result.Imported)
	for _, e := range result.Errors {
		fmt.Fprintf(o.out, "  %s\n", e)
	}
	return nil
}
