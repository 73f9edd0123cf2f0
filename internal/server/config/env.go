package config

import (
	"os"
	"strconv"
	"time"
)

// Environment variable names. These match what the deployment already sets,
// so the server drops into the existing .env without renames.
const (
	envAddress       = "ADDRESS"
	envDatabaseDSN   = "DATABASE_DSN"
	envEncryptionKey = "ENCRYPTION_KEY"
	envJWTSecret     = "JWT_SECRET_KEY"
	envTokenTTL      = "JWT_EXPIRE_MINUTES"
	envEnforce       = "ENFORCE_ENCRYPTED_INPUT"
)

// parseEnv overlays Config fields from environment variables. Unset or
// malformed values leave the current value untouched.
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv(envAddress); ok {
		config.EndpointAddrHTTP = v
	}
	if v, ok := os.LookupEnv(envDatabaseDSN); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv(envEncryptionKey); ok {
		config.EncryptionKey = v
	}
	if v, ok := os.LookupEnv(envJWTSecret); ok {
		config.JWTSecret = v
	}
	if v, ok := os.LookupEnv(envTokenTTL); ok {
		if minutes, err := strconv.Atoi(v); err == nil {
			config.TokenValidityDuration = time.Duration(minutes) * time.Minute
		}
	}
	if v, ok := os.LookupEnv(envEnforce); ok {
		if enforce, err := strconv.ParseBool(v); err == nil {
			config.EnforceEncryptedInput = enforce
		}
	}
}
