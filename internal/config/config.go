package config

import (
	"encoding/json"

	"github.com/kelseyhightower/envconfig"
)

var singleConfig *Config = nil

type Config struct {
	Database *dbConfig
	Service  *svcConfig
}

type dbConfig struct {
	Type     string `envconfig:"DB_TYPE" default:"sqlite"`
	Hostname string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	Name     string `envconfig:"DB_NAME" default:"switches.db"`
	User     string `envconfig:"DB_USER" default:"admin"`
	Password string `envconfig:"DB_PASS" default:"adminpass"`
	// Metrics instruments the database driver with prometheus counters.
	Metrics bool `envconfig:"DB_METRICS" default:"false"`
}

type svcConfig struct {
	Address        string   `envconfig:"SWITCH_INVENTORY_ADDRESS" default:":3443"`
	MetricsAddress string   `envconfig:"SWITCH_INVENTORY_METRICS_ADDRESS" default:":8080"`
	LogLevel       string   `envconfig:"SWITCH_INVENTORY_LOG_LEVEL" default:"info"`
	CorsOrigins    []string `envconfig:"SWITCH_INVENTORY_CORS_ORIGINS" default:"*"`
}

func New() (*Config, error) {
	if singleConfig == nil {
		singleConfig = new(Config)
		if err := envconfig.Process("", singleConfig); err != nil {
			return nil, err
		}
	}
	return singleConfig, nil
}

// NewDefault returns a configuration holding only the default values.
// The database is an in-memory SQLite instance shared by every connection of the pool.
func NewDefault() *Config {
	return &Config{
		Database: &dbConfig{
			Type:     "sqlite",
			Hostname: "localhost",
			Port:     "5432",
			Name:     "file::memory:?cache=shared",
			User:     "admin",
			Password: "adminpass",
		},
		Service: &svcConfig{
			Address:        ":3443",
			MetricsAddress: ":8080",
			LogLevel:       "info",
			CorsOrigins:    []string{"*"},
		},
	}
}

func (c *Config) String() string {
	redacted := *c.Database
	redacted.Password = "*****"
	val, _ := json.Marshal(struct {
		Database dbConfig
		Service  *svcConfig
	}{Database: redacted, Service: c.Service})
	return string(val)
}
