package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/sos/internal/flagx"
)

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-d string   database DSN (PostgreSQL URL or SQLite path)
//	-storage    postgres, sqlite or memory
//	-s string   JWT HMAC secret key
//	-t int      session token validity, minutes
//	-m string   metrics bind address, empty disables the endpoint
//	-l string   log level
//	-seed       seed demo data into the memory store
//
// os.Args is filtered down to these flags first so other consumers of the
// command line (the -c config flag) do not collide.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:],
		[]string{"-a", "-d", "-storage", "-s", "-t", "-m", "-l"},
		"-seed")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.Storage, "storage", config.Storage, "storage backend: postgres, sqlite or memory")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	sessionTokenValidity := fs.Int("t", int(config.SessionTokenValidityDuration.Minutes()), "session token validity (in minutes)")
	fs.StringVar(&config.MetricsAddr, "m", config.MetricsAddr, "metrics address, empty to disable")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.BoolVar(&config.SeedDemoData, "seed", config.SeedDemoData, "seed demo data (memory storage only)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.SessionTokenValidityDuration = time.Duration(*sessionTokenValidity) * time.Minute
		}
	})
}
