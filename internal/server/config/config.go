// Package config handles configuration for the server component, including
// defaults, .env/environment variables, JSON overlay, and command-line flags.
package config

import (
	"errors"
	"time"
)

// Config holds runtime settings for the userboard server.
//
// Fields:
//   - Addr: bind address for the HTTP endpoint.
//   - MongoURI / MongoDatabase: document store connection settings.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use test defaults in prod.
//   - TokenValidityDuration: bearer token lifetime.
//   - BcryptCost: cost factor for password hashing.
//
// A Config is built once at startup and passed by reference into the
// components that need it; nothing reads ambient globals afterwards.
type Config struct {
	Addr                  string
	MongoURI              string
	MongoDatabase         string
	SecretKey             string
	TokenValidityDuration time.Duration
	BcryptCost            int
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.MongoURI = "mongodb://localhost:27017"
	c.MongoDatabase = "userboard"
	c.SecretKey = "dev_secret"
	c.TokenValidityDuration = 24 * time.Hour
	c.BcryptCost = 10
}

// Validate reports startup-time invariant violations. A missing signing key
// means the process cannot serve requests at all.
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return errors.New("signing secret key is not configured")
	}
	if c.MongoURI == "" {
		return errors.New("mongo connection string is not configured")
	}
	if c.TokenValidityDuration <= 0 {
		return errors.New("token validity duration must be positive")
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment (including an optional .env file), an optional JSON
// file, and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
