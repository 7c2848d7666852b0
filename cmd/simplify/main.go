package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-simplify/internal/client"
	"github.com/MKhiriev/go-simplify/internal/config"
	"github.com/MKhiriev/go-simplify/internal/logger"
	"github.com/MKhiriev/go-simplify/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	fs := flag.NewFlagSet("simplify", flag.ExitOnError)
	input := client.RegisterFlags(fs)

	cfg, err := config.GetClientConfig(fs, os.Args[1:])
	if err != nil {
		logger.NewLogger("simplify-cli").Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" && buildInfo.BuildVersion() != "N/A" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log := logger.NewLoggerWithWriter(os.Stderr, "simplify-cli", logger.ParseLevel(cfg.Log.Level))

	app, err := client.NewApp(cfg, input, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		stop()
		os.Exit(1)
	}
}

func printBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Fprintf(os.Stderr, "Build version: %s\n", info.BuildVersion())
	fmt.Fprintf(os.Stderr, "Build date: %s\n", info.BuildDate())
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", info.BuildCommit())

	return info
}
