package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	CORS     CORSConfig
	Provider ProviderConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ProviderConfig holds settings for the LLM text-completion provider.
type ProviderConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// Load reads configuration from environment variables with the INVOGEN_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("INVOGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (local dev origins of the invoice editor frontend)
	v.SetDefault("cors.allowed_origins", "http://localhost:5173,http://127.0.0.1:5173")

	// Provider defaults
	v.SetDefault("provider.provider", "openai")
	v.SetDefault("provider.api_key", "")
	v.SetDefault("provider.default_model", "")
	v.SetDefault("provider.timeout_secs", 60)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":            "INVOGEN_SERVER_PORT",
		"server.read_timeout":    "INVOGEN_SERVER_READ_TIMEOUT",
		"server.write_timeout":   "INVOGEN_SERVER_WRITE_TIMEOUT",
		"server.environment":     "INVOGEN_SERVER_ENVIRONMENT",
		"log.level":              "INVOGEN_LOG_LEVEL",
		"log.format":             "INVOGEN_LOG_FORMAT",
		"cors.allowed_origins":   "INVOGEN_CORS_ALLOWED_ORIGINS",
		"provider.provider":      "INVOGEN_PROVIDER_PROVIDER",
		"provider.api_key":       "INVOGEN_PROVIDER_API_KEY",
		"provider.default_model": "INVOGEN_PROVIDER_DEFAULT_MODEL",
		"provider.timeout_secs":  "INVOGEN_PROVIDER_TIMEOUT_SECS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if INVOGEN_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("INVOGEN_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Provider = ProviderConfig{
		Provider:     v.GetString("provider.provider"),
		APIKey:       v.GetString("provider.api_key"),
		DefaultModel: v.GetString("provider.default_model"),
		TimeoutSecs:  v.GetInt("provider.timeout_secs"),
	}

	return cfg, nil
}

// Validate checks startup-time requirements that have no usable default.
// A missing provider API key is fatal: the process must not start without it.
func (c *Config) Validate() error {
	if c.Provider.APIKey == "" {
		return fmt.Errorf("completion provider API key is not set (INVOGEN_PROVIDER_API_KEY)")
	}
	return nil
}
