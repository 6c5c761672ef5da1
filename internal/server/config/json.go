package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/sos/internal/flagx"
	"github.com/dmitrijs2005/sos/internal/timex"
)

// JsonConfig is the on-disk shape of the server JSON config. Durations go
// through timex.Duration so both "90s" and integer nanoseconds are accepted.
// Pointer fields distinguish "absent" from the zero value.
type JsonConfig struct {
	EndpointAddrGRPC             string          `json:"endpoint_addr_grpc"`
	DatabaseDSN                  string          `json:"database_dsn"`
	Storage                      string          `json:"storage"`
	SecretKey                    string          `json:"secret_key"`
	SessionTokenValidityDuration *timex.Duration `json:"session_token_validity_duration"`
	MetricsAddr                  *string         `json:"metrics_addr"`
	LogLevel                     string          `json:"log_level"`
	SeedDemoData                 *bool           `json:"seed_demo_data"`
}

// parseJson loads the file named by -c/-config (or SOS_CONFIG) and overlays
// every field present in it onto config. Without a path nothing happens.
// An unreadable file or invalid JSON panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.Storage, c.Storage)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.LogLevel, c.LogLevel)

	if c.SessionTokenValidityDuration != nil {
		config.SessionTokenValidityDuration = c.SessionTokenValidityDuration.Duration
	}
	if c.MetricsAddr != nil {
		config.MetricsAddr = *c.MetricsAddr
	}
	if c.SeedDemoData != nil {
		config.SeedDemoData = *c.SeedDemoData
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
