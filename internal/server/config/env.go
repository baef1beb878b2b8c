package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// parseEnv overlays Config fields from environment variables. Only set
// variables override; everything else keeps its current value.
//
// Recognized variables:
//
//	ADDRESS               HTTP bind address (e.g. ":3000")
//	DATABASE_DSN          PostgreSQL DSN
//	JWT_SECRET            token signing secret
//	CRYPTR_SECRET         field encryption secret
//	TOKEN_VALIDITY_HOURS  bearer token lifetime, hours
//	CORS_ALLOWED_ORIGINS  comma-separated origin list
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("JWT_SECRET"); ok {
		config.JWTSecret = v
	}
	if v, ok := os.LookupEnv("CRYPTR_SECRET"); ok {
		config.CryptrSecret = v
	}
	if v, ok := os.LookupEnv("TOKEN_VALIDITY_HOURS"); ok {
		if hours, err := strconv.Atoi(v); err == nil {
			config.TokenValidityDuration = time.Duration(hours) * time.Hour
		}
	}
	if v, ok := os.LookupEnv("CORS_ALLOWED_ORIGINS"); ok {
		config.CORSAllowedOrigins = strings.Split(v, ",")
	}
}
