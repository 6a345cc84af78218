package config

// Config holds all application configuration, organized into logical groups.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains the HTTP server settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// AuthRateLimit is the sustained requests-per-second allowed per client
	// IP on the authentication endpoints; AuthRateBurst is the burst size.
	AuthRateLimit float64 `mapstructure:"auth_rate_limit" validate:"gt=0"`
	AuthRateBurst int     `mapstructure:"auth_rate_burst" validate:"gt=0"`
}

// DatabaseConfig contains the database connection settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains token signing and lifetime settings.
type AuthConfig struct {
	// JWTSecret signs session tokens. HMAC-SHA256 needs a high-entropy
	// secret, hence the length floor.
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`

	// TokenLifetimeMinutes is how long an issued session token stays valid.
	TokenLifetimeMinutes int `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}
