// Package config handles configuration for the server component, layering
// defaults, a .env file, environment variables, a JSON file and
// command-line flags.
package config

import "time"

// Storage backends accepted by Config.Storage.
const (
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
	StorageMemory   = "memory"
)

// Config holds runtime settings for the survey server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the gRPC endpoint.
//   - DatabaseDSN: PostgreSQL URL or SQLite path; ignored by the memory store.
//   - Storage: postgres, sqlite or memory. Empty means infer from DatabaseDSN.
//   - SecretKey: HMAC secret for signing session tokens (HS256).
//   - SessionTokenValidityDuration: session token lifetime.
//   - MetricsAddr: bind address for the Prometheus /metrics endpoint; empty disables it.
//   - LogLevel: debug, info, warn or error.
//   - SeedDemoData: load demo users and surveys into the memory store at start.
type Config struct {
	EndpointAddrGRPC             string        `env:"GRPC_ADDR"`
	DatabaseDSN                  string        `env:"DATABASE_DSN"`
	Storage                      string        `env:"STORAGE"`
	SecretKey                    string        `env:"SECRET_KEY"`
	SessionTokenValidityDuration time.Duration `env:"SESSION_TOKEN_TTL"`
	MetricsAddr                  string        `env:"METRICS_ADDR"`
	LogLevel                     string        `env:"LOG_LEVEL"`
	SeedDemoData                 bool          `env:"SEED_DEMO_DATA"`
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret key must be overridden outside development.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.DatabaseDSN = "sos.db"
	c.Storage = ""
	c.SecretKey = "secretKey"
	c.SessionTokenValidityDuration = 60 * time.Minute
	c.MetricsAddr = ":9090"
	c.LogLevel = "info"
	c.SeedDemoData = false
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from .env, the environment, an optional JSON file and finally from
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
