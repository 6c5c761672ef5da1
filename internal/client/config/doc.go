// Package config loads runtime configuration for the survey CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file in the working directory, if present.
//  3. SOS_CLIENT_* environment variables.
//  4. Optional JSON file selected via -c, -config or SOS_CONFIG.
//  5. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the backend gRPC endpoint
//	-t int      per-call timeout (seconds)
//	-l string   log level
//
// # JSON schema
//
// Durations go through timex.Duration, so values can be either strings like
// "5s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "call_timeout": "5s",
//	  "log_level": "warn"
//	}
package config
