package client

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"sigs.k8s.io/yaml"
)

// Config holds the information needed to connect to a switch inventory server.
type Config struct {
	Service Service `json:"service"`
}

// Service tells where the server is and who is calling it.
type Service struct {
	// Server is the URL of the server (the part before /api/v1/...).
	Server string `json:"server"`
	// CallerID is sent as the caller of every question.
	CallerID string `json:"caller_id,omitempty"`
}

func NewDefault() *Config {
	return &Config{
		Service: Service{Server: "http://localhost:3443"},
	}
}

// DefaultConfigPath returns the default path to the client config file.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".switchctl", "client.yaml")
}

func ParseConfigFile(filename string) (*Config, error) {
	contents, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	config := NewDefault()
	if err := yaml.Unmarshal(contents, config); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadOrDefault reads filename when it exists and falls back to the default config otherwise.
func LoadOrDefault(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return NewDefault(), nil
	}
	return ParseConfigFile(filename)
}

func (c *Config) Persist(filename string) error {
	contents, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	if err := os.WriteFile(filename, contents, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	if err := errors.Join(validateService(c.Service)...); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func validateService(service Service) []error {
	validationErrors := make([]error, 0)
	if len(service.Server) == 0 {
		validationErrors = append(validationErrors, fmt.Errorf("no server found"))
		return validationErrors
	}

	u, err := url.Parse(service.Server)
	if err != nil {
		validationErrors = append(validationErrors, fmt.Errorf("invalid server format %q: %w", service.Server, err))
		return validationErrors
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		validationErrors = append(validationErrors, fmt.Errorf("invalid server scheme %q: expected http or https", u.Scheme))
	}
	if len(u.Host) == 0 {
		validationErrors = append(validationErrors, fmt.Errorf("invalid server format %q: no host", service.Server))
	}
	return validationErrors
}

// NewHTTPClientFromConfig returns a new HTTP Client from the given config.
func NewHTTPClientFromConfig(config *Config) *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			ForceAttemptHTTP2:     false,
			MaxIdleConns:          100,
			IdleConnTimeout:       90 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}
}
