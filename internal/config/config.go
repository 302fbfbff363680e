package config

import (
	"fmt"
	"os"
)

// Config holds all application configuration. It is built once at startup
// and passed explicitly to the components that need it; nothing reads the
// environment after Load returns.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	OpenAI   OpenAIConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port string // listen port (e.g., "5000")
}

// DatabaseConfig contains database-related settings.
type DatabaseConfig struct {
	Path string // SQLite database file path
}

// AuthConfig contains authentication settings.
type AuthConfig struct {
	JWTSecret     string // session token signing secret
	SecretKey     string // general application secret
	AdminUsername string // first-run bootstrap account
	AdminPassword string
}

// OpenAIConfig contains upstream API settings.
type OpenAIConfig struct {
	APIKey string // empty disables the relay (chat answers 500)
}

// Load loads configuration from environment variables. It fails when no
// signing secret is configured; everything else has a usable default.
// When JWT_SECRET_KEY is unset, SECRET_KEY doubles as the signing secret.
func Load() (*Config, error) {
	cfg := defaults()
	if cfg.Auth.JWTSecret == "" {
		cfg.Auth.JWTSecret = cfg.Auth.SecretKey
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY (or SECRET_KEY) environment variable is not set; required for production")
	}
	return cfg, nil
}

// LoadWithDefaults is like Load but fills development secrets when none are
// configured. WARNING: Only use in development! Use Load() in production.
func LoadWithDefaults() (*Config, error) {
	cfg := defaults()
	if cfg.Auth.SecretKey == "" {
		cfg.Auth.SecretKey = "default-super-secret-key"
	}
	if cfg.Auth.JWTSecret == "" {
		cfg.Auth.JWTSecret = "another-default-jwt-secret"
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "5000"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "chatbot.db"),
		},
		Auth: AuthConfig{
			JWTSecret:     getEnv("JWT_SECRET_KEY", ""),
			SecretKey:     getEnv("SECRET_KEY", ""),
			AdminUsername: getEnv("ADMIN_USER", "default_admin"),
			AdminPassword: getEnv("ADMIN_PASS", "default_pass"),
		},
		OpenAI: OpenAIConfig{
			APIKey: getEnv("OPENAI_API_KEY", ""),
		},
	}
}

// getEnv retrieves an environment variable with a default fallback.
func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

// String returns a string representation of the config (sensitive values are masked).
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %s, DB: %s, Admin: %s, Secrets: *** (masked) ***}",
		c.Server.Port, c.Database.Path, c.Auth.AdminUsername)
}
