package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from an optional config.yaml in the working
// directory and from environment variables with the QNA_ prefix
// (e.g. QNA_SERVER_PORT, QNA_STORE_DATABASE_URL). Environment variables take
// precedence over file values, which take precedence over defaults.
// Returns a populated Config or an error if loading or validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults double as the full key registry so AutomaticEnv can
	// resolve keys that appear only in the environment.
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("store.backend", "memory")
	v.SetDefault("store.database_url", "")
	v.SetDefault("auth.password_scheme", "plaintext")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file is fine; env vars and defaults cover everything.
	}

	v.SetEnvPrefix("QNA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
