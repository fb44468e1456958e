package cli

import (
	"github.com/kubev2v/switch-inventory/internal/client"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type GlobalOptions struct {
	ConfigFilePath string
	ServerUrl      string
	CallerID       string
}

func DefaultGlobalOptions() GlobalOptions {
	return GlobalOptions{
		ConfigFilePath: client.DefaultConfigPath(),
	}
}

func (o *GlobalOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.ConfigFilePath, "config", "c", o.ConfigFilePath, "Path to the client configuration file")
	fs.StringVarP(&o.ServerUrl, "server-url", "u", o.ServerUrl, "Address of the server (overrides the configuration file)")
	fs.StringVar(&o.CallerID, "user", o.CallerID, "Caller id sent with the requests (overrides the configuration file)")
}

func (o *GlobalOptions) Complete(cmd *cobra.Command, args []string) error {
	return nil
}

func (o *GlobalOptions) Validate(args []string) error {
	return nil
}

// Client builds an api client from the configuration file and the flags overriding it.
func (o *GlobalOptions) Client() (*client.Client, error) {
	config, err := client.LoadOrDefault(o.ConfigFilePath)
	if err != nil {
		return nil, err
	}
	if o.ServerUrl != "" {
		config.Service.Server = o.ServerUrl
	}
	if o.CallerID != "" {
		config.Service.CallerID = o.CallerID
	}
	return client.NewFromConfig(config)
}
