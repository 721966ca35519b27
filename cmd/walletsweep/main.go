package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gabapcia/walletsweep/internal/config"
	"github.com/gabapcia/walletsweep/internal/handlers/cli"
	"github.com/gabapcia/walletsweep/internal/pkg/logger"
	"github.com/gabapcia/walletsweep/internal/pkg/telemetry"
)

const serviceName = "walletsweep"

// version is set with -ldflags at build time.
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	// Telemetry first so the logger can bridge its records.
	var runID string
	if cfg.Telemetry {
		id, shutdown, err := telemetry.Init(ctx, serviceName, telemetry.WithVersion(version))
		if err != nil {
			fmt.Fprintln(os.Stderr, "telemetry:", err)
			return 1
		}
		defer shutdown(context.WithoutCancel(ctx))
		runID = id
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel), logger.WithEncoding(cfg.LogFormat)); err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		return 1
	}
	defer logger.Sync()

	if runID != "" {
		logger.Info(ctx, "telemetry enabled", "run_id", runID, "version", version)
	}

	if err := cli.Run(ctx, cfg, cli.DialNode); err != nil {
		logger.Error(ctx, "walletsweep failed", "error", err)
		return 1
	}

	return 0
}
