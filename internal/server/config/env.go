package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to every variable name declared in Config tags.
const EnvPrefix = "SOS_"

// dotEnvFile is loaded into the process environment before variables are
// read. Variables that are already set win over the file.
var dotEnvFile = ".env"

// parseEnv overlays Config fields from SOS_* environment variables. Unset
// variables leave the current values untouched. A missing .env file is not
// an error; an unreadable one or a malformed value panics.
func parseEnv(config *Config) {
	if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(fmt.Errorf("load %s: %w", dotEnvFile, err))
	}

	if err := env.ParseWithOptions(config, env.Options{Prefix: EnvPrefix}); err != nil {
		panic(fmt.Errorf("parse env: %w", err))
	}
}
