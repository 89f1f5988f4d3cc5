// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the environment inputs of the server process.
type Config struct {
	DatabaseURL string        // PostgreSQL DSN
	JWTSecret   string        // HS256 signing key
	HTTPAddr    string        // listen address
	CORSOrigin  string        // the single allowed cross-origin caller
	AccessTTL   time.Duration // access token lifetime
}

// Load reads configuration from environment variables, applying defaults
// for everything except DATABASE_URL and JWT_SECRET.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("HTTP_ADDR", ":3000")
	v.SetDefault("CORS_ORIGIN", "http://localhost:5173")
	v.SetDefault("ACCESS_TTL", "1h")

	v.AutomaticEnv()

	ttl, err := time.ParseDuration(v.GetString("ACCESS_TTL"))
	if err != nil {
		return nil, fmt.Errorf("parse ACCESS_TTL: %w", err)
	}

	return &Config{
		DatabaseURL: v.GetString("DATABASE_URL"),
		JWTSecret:   v.GetString("JWT_SECRET"),
		HTTPAddr:    v.GetString("HTTP_ADDR"),
		CORSOrigin:  v.GetString("CORS_ORIGIN"),
		AccessTTL:   ttl,
	}, nil
}
