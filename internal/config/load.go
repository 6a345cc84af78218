package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix namespaces the environment variables read by Load, so e.g.
// TASKWELL_DATABASE_URL populates Config.Database.URL.
const envPrefix = "TASKWELL"

// Load reads configuration from an optional config.yaml in the working
// directory and from TASKWELL_* environment variables, with environment
// variables taking precedence. The result is validated before being
// returned.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults for everything that has a sensible one. The database URL and
	// JWT secret have no default and must be provided.
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.auth_rate_limit", 5.0)
	v.SetDefault("server.auth_rate_burst", 10)
	v.SetDefault("auth.token_lifetime_minutes", 7*24*60)

	// Registered empty so AutomaticEnv can bind them; validation rejects the
	// empty values if they are not supplied.
	v.SetDefault("database.url", "")
	v.SetDefault("auth.jwt_secret", "")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file is fine; environment variables and defaults apply.
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
