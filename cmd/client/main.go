package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/sos/internal/buildinfo"
	"github.com/dmitrijs2005/sos/internal/client/cli"
	"github.com/dmitrijs2005/sos/internal/client/config"
	"github.com/dmitrijs2005/sos/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, "text", cfg.LogLevel)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
