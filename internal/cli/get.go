package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	api "github.com/kubev2v/switch-inventory/api/v1alpha1"
	"github.com/kubev2v/switch-inventory/internal/client"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"
	"sigs.k8s.io/yaml"
)

const (
	jsonFormat = "json"
	yamlFormat = "yaml"
)

var (
	legalOutputTypes = []string{jsonFormat, yamlFormat}
)

type GetOptions struct {
	GlobalOptions

	Output      string
	Search      string
	Status      string
	Criticality string

	out io.Writer
}

func DefaultGetOptions() *GetOptions {
	return &GetOptions{
		GlobalOptions: DefaultGlobalOptions(),
		out:           os.Stdout,
	}
}

func NewCmdGet() *cobra.Command {
	o := DefaultGetOptions()
	cmd := &cobra.Command{
		Use:   "get (switches | switch/ID | stats)",
		Short: "Display one or many resources.",
		Args:  cobra.ExactArgs(1),
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

func (o *GetOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalOutputTypes, ", ")))
	fs.StringVar(&o.Search, "search", o.Search, "Only list the switches whose asset id, name or location contains this text")
	fs.StringVar(&o.Status, "status", o.Status, "Only list the switches with this status")
	fs.StringVar(&o.Criticality, "criticality", o.Criticality, "Only list the switches with this criticality")
}

func (o *GetOptions) Complete(cmd *cobra.Command, args []string) error {
	if err := o.GlobalOptions.Complete(cmd, args); err != nil {
		return err
	}
	o.out = cmd.OutOrStdout()
	return nil
}

func (o *GetOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}

	_, _, err := parseAndValidateKindId(args[0])
	if err != nil {
		return err
	}

	if len(o.Output) > 0 && !funk.Contains(legalOutputTypes, o.Output) {
		return fmt.Errorf("output format must be one of %s", strings.Join(legalOutputTypes, ", "))
	}

	return nil
}

func (o *GetOptions) Run(ctx context.Context, args []string) error {
	c, err := o.Client()
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}

	kind, id, err := parseAndValidateKindId(args[0])
	if err != nil {
		return err
	}

	var response any
	switch {
	case kind == SwitchKind && id != nil:
		response, err = c.GetSwitch(ctx, *id)
	case kind == SwitchKind && id == nil:
		response, err = c.ListSwitches(ctx, client.SwitchParams{Search: o.Search, Status: o.Status, Criticality: o.Criticality})
	case kind == StatsKind:
		response, err = c.SwitchStats(ctx)
	default:
		return fmt.Errorf("unsupported resource kind: %s", kind)
	}
	return o.processResponse(response, err, kind, id)
}

func (o *GetOptions) processResponse(response any, err error, kind string, id *uuid.UUID) error {
	errorPrefix := fmt.Sprintf("reading %s/%s", kind, id)
	if id == nil {
		errorPrefix = fmt.Sprintf("listing %s", plural(kind))
	}

	if err != nil {
		return fmt.Errorf("%s: %w", errorPrefix, err)
	}

	switch o.Output {
	case jsonFormat:
		marshalled, err := json.Marshal(response)
		if err != nil {
			return fmt.Errorf("marshalling resource: %w", err)
		}
		fmt.Fprintf(o.out, "%s\n", string(marshalled))
		return nil
	case yamlFormat:
		marshalled, err := yaml.Marshal(response)
		if err != nil {
			return fmt.Errorf("marshalling resource: %w", err)
		}
		fmt.Fprintf(o.out, "%s\n", string(marshalled))
		return nil
	default:
		return o.printTable(response)
	}
}

func (o *GetOptions) printTable(response any) error {
	w := tabwriter.NewWriter(o.out, 0, 8, 1, '\t', 0)
	switch r := response.(type) {
	case api.SwitchList:
		printSwitchesTable(w, r...)
	case *api.Switch:
		printSwitchesTable(w, *r)
	case *api.InventoryStats:
		printStatsTable(w, r)
	default:
		return fmt.Errorf("unknown resource type %T", response)
	}
	return w.Flush()
}

func printSwitchesTable(w io.Writer, switches ...api.Switch) {
	fmt.Fprintln(w, "ID\tASSET\tNAME\tSTATUS\tVENDOR\tSITE")
	for _, s := range switches {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", s.Id, s.AssetId, s.Name, s.Status, s.Vendor, s.Site)
	}
}

func printStatsTable(w io.Writer, stats *api.InventoryStats) {
	fmt.Fprintln(w, "TOTAL\tACTIVE\tINACTIVE\tHIGH CRITICALITY\tWARRANTY EXPIRING\tTOTAL VALUE")
	fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%.2f\n",
		stats.Total, stats.Active, stats.Inactive, stats.HighCriticality, stats.WarrantyExpiring, stats.TotalValue)
}
