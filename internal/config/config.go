package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"lp-publisher/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	HTTP configs.HTTP `envPrefix:"HTTP_"`

	Log configs.Logger `envPrefix:"LOG_"`

	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Shared configures the object store exchanged with the delivery
	// partner. Environment variables prefixed with SHARED_ populate it.
	Shared configs.SharedStore `envPrefix:"SHARED_"`

	Redis configs.Redis `envPrefix:"REDIS_"`

	// Reconcile holds key prefixes and the business time zone. Environment
	// variables prefixed with RECONCILE_ populate it.
	Reconcile configs.Reconcile `envPrefix:"RECONCILE_"`

	Scheduler configs.Scheduler `envPrefix:"SCHEDULER_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, an error is returned. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Shared.Driver {
	case "s3", "minio":
	default:
		return fmt.Errorf("unknown shared store driver %q", c.Shared.Driver)
	}
	if c.Shared.Driver == "minio" && c.Shared.Endpoint == "" {
		return fmt.Errorf("shared store driver minio requires SHARED_ENDPOINT")
	}
	if c.Reconcile.StatusKeyPrefix == "" || c.Reconcile.OrderKeyPrefix == "" {
		return fmt.Errorf("reconcile key prefixes must not be empty")
	}
	if _, err := c.Reconcile.Location(); err != nil {
		return err
	}
	if c.Scheduler.Enabled && c.Scheduler.Interval <= 0 {
		return fmt.Errorf("scheduler interval must be positive")
	}
	return nil
}
