package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/spool-dev/spool/internal/config"
	"github.com/spool-dev/spool/internal/server"
)

var (
	version = "0.3.0"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	configFlag := flag.String("config", "", "Path to the configuration file")
	initConfig := flag.Bool("init", false, "Write a default configuration file and exit")
	printConfig := flag.Bool("print-config", false, "Print the effective configuration and exit")
	showVersion := flag.Bool("version", false, "Show version")
	flag.Parse()

	if *showVersion {
		fmt.Printf("spoold %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	path := *configFlag
	if path == "" {
		path = config.DefaultPath()
	}
	loader := config.NewLoader(path)

	if *initConfig {
		if _, err := loader.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote default configuration to %s\n", loader.ConfigPath())
		os.Exit(0)
	}

	cfg, err := loader.LoadOrDefault()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *printConfig {
		out, err := config.Dump(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(out)
		os.Exit(0)
	}

	// Set up logging
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.Server.LogLevel),
	}))

	srv, err := server.New(cfg, logger)
	if err != nil {
		logger.Error("failed to create server", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger.Info("starting spoold", "version", version, "addr", cfg.Server.Address())
	if err := srv.Run(ctx); err != nil && err != context.Canceled {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	logger.Info("spoold stopped")
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
