package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/lucasnerism/drivenpass/internal/flagx"
)

// JsonConfig is the DTO for reading JSON configuration files. Durations are
// accepted as integer hours to keep the file format simple.
type JsonConfig struct {
	EndpointAddr       string   `json:"endpoint_addr"`
	DatabaseDSN        string   `json:"database_dsn"`
	JWTSecret          string   `json:"jwt_secret"`
	CryptrSecret       string   `json:"cryptr_secret"`
	TokenValidityHours int      `json:"token_validity_hours"`
	CORSAllowedOrigins []string `json:"cors_allowed_origins"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags into the provided Config. Absent fields keep their
// current values. An unreadable or invalid file panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.JWTSecret != "" {
		config.JWTSecret = c.JWTSecret
	}
	if c.CryptrSecret != "" {
		config.CryptrSecret = c.CryptrSecret
	}
	if c.TokenValidityHours > 0 {
		config.TokenValidityDuration = time.Duration(c.TokenValidityHours) * time.Hour
	}
	if len(c.CORSAllowedOrigins) > 0 {
		config.CORSAllowedOrigins = c.CORSAllowedOrigins
	}
}
