// ====================================
// File: cmd/monitor/main.go
// ====================================
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/rovshanmuradov/pumpcurve-monitor/internal/app"
	"github.com/rovshanmuradov/pumpcurve-monitor/internal/config"
	"github.com/rovshanmuradov/pumpcurve-monitor/internal/logger"
)

func main() {
	envFile := flag.String("env", ".env", "path to the dotenv file")
	flag.Parse()

	cfg, err := config.LoadConfig(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	logCfg := logger.DefaultConfig()
	logCfg.Debug = cfg.DebugLogging
	logCfg.LogFile = cfg.LogFile
	log, err := logger.New(logCfg, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync(log) }()

	log.Info("Starting pump.fun bonding curve monitor",
		zap.String("token", cfg.TokenAddress),
		zap.String("rpc", cfg.RPCEndpoint),
		zap.Duration("interval", cfg.PollInterval))

	runner, err := app.NewRunner(cfg, log, app.Dependencies{})
	if err != nil {
		log.Fatal("Failed to initialize monitor", zap.Error(err))
	}

	if err := runner.Run(context.Background()); err != nil {
		log.Fatal("Monitor execution error", zap.Error(err))
	}
}
