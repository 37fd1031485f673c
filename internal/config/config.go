package config

// Recognized values for StoreConfig.Backend and AuthConfig.PasswordScheme.
const (
	StoreBackendMemory   = "memory"
	StoreBackendPostgres = "postgres"

	PasswordSchemePlaintext = "plaintext"
	PasswordSchemeBcrypt    = "bcrypt"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Store  StoreConfig  `mapstructure:"store"  validate:"required"`
	Auth   AuthConfig   `mapstructure:"auth"   validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// StoreConfig selects and configures the persistence backend.
// The memory backend keeps everything in-process and needs no URL;
// the postgres backend requires a database URL and runs migrations
// at startup.
type StoreConfig struct {
	Backend     string `mapstructure:"backend"      validate:"required,oneof=memory postgres"`
	DatabaseURL string `mapstructure:"database_url" validate:"required_if=Backend postgres,omitempty,url"`
}

// AuthConfig contains authentication-related settings.
// PasswordScheme chooses how stored passwords are compared: "plaintext"
// (exact match) or "bcrypt" (hash on save, bcrypt compare on update).
type AuthConfig struct {
	PasswordScheme string `mapstructure:"password_scheme" validate:"required,oneof=plaintext bcrypt"`
}
