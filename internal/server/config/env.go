package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables, loading a .env
// file first when one is present in the working directory.
//
// Recognized variables:
//
//	ADDR          HTTP bind address (":8080")
//	PORT          shorthand for ADDR when only the port is set
//	MONGO_URI     document store connection string
//	MONGO_DB      database name
//	JWT_SECRET    HMAC signing secret
//	TOKEN_TTL     token lifetime, Go duration syntax ("24h")
//	BCRYPT_COST   bcrypt cost factor
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("PORT"); v != "" {
		config.Addr = ":" + v
	}
	if v := os.Getenv("ADDR"); v != "" {
		config.Addr = v
	}
	if v := os.Getenv("MONGO_URI"); v != "" {
		config.MongoURI = v
	}
	if v := os.Getenv("MONGO_DB"); v != "" {
		config.MongoDatabase = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.BcryptCost = n
		}
	}
}
