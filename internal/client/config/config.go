package config

import "time"

// Config holds runtime settings for the survey CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - CallTimeout: deadline applied to each remote call.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ServerEndpointAddr string        `env:"SERVER_ADDR"`
	CallTimeout        time.Duration `env:"CALL_TIMEOUT"`
	LogLevel           string        `env:"LOG_LEVEL"`
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.CallTimeout = 5 * time.Second
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// .env, the environment, JSON (if present) and command-line flags (if
// present). Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
