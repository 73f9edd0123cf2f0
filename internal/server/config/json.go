package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/Werffios/AntilleanController/internal/flagx"
	"github.com/Werffios/AntilleanController/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for interval fields, which allows
// parsing both string values such as "60m" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON configuration
// files. After unmarshalling, its fields are copied into the runtime Config
// struct which uses time.Duration.
type JsonConfig struct {
	EndpointAddrHTTP      string         `json:"endpoint_addr_http"`
	DatabaseDSN           string         `json:"database_dsn"`
	EncryptionKey         string         `json:"encryption_key"`
	JWTSecret             string         `json:"jwt_secret"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	EnforceEncryptedInput bool           `json:"enforce_encrypted_input"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path comes from the -c or -config command-line flags; if neither
// is set, no JSON file is loaded. If the file cannot be read or contains
// invalid JSON, the function panics: a present-but-broken config file is a
// deployment error, not something to limp past.
func parseJson(config *Config) {

	// try flags
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

	config.EndpointAddrHTTP = c.EndpointAddrHTTP
	config.DatabaseDSN = c.DatabaseDSN
	config.EncryptionKey = c.EncryptionKey
	config.JWTSecret = c.JWTSecret
	config.TokenValidityDuration = time.Duration(c.TokenValidityDuration.Duration)
	config.EnforceEncryptedInput = c.EnforceEncryptedInput
}
