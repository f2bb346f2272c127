package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/magicaleks/aicaps-agent/internal/adapter/httpserver"
	"github.com/magicaleks/aicaps-agent/internal/config"
	"github.com/magicaleks/aicaps-agent/internal/infra/inventory"
	"github.com/magicaleks/aicaps-agent/internal/infra/storage"
	"github.com/magicaleks/aicaps-agent/internal/probe"
	"github.com/magicaleks/aicaps-agent/internal/usecase/publish"
	"github.com/magicaleks/aicaps-agent/internal/usecase/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	logger := config.NewLogger(cfg)
	slog.SetDefault(logger)

	logger.Info("starting aicaps-agent",
		"version", config.Version,
		"build_time", config.BuildTime,
		"debug", cfg.Debug,
	)

	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM,
	)
	defer cancel()

	reports := report.NewService(cfg, logger)

	if cfg.InventoryURL != "" {
		agentID, err := storage.NewAgentStore(cfg.DataDir).AgentID(ctx)
		if err != nil {
			logger.Error("failed to resolve agent id", "err", err)
			os.Exit(1)
		}

		client := inventory.NewClient(cfg.InventoryURL, cfg.APIKey)
		if err := client.Ping(ctx); err != nil {
			logger.Warn("inventory service unreachable, will keep publishing", "err", err)
		}

		publisher := publish.NewPublisher(
			reports, client,
			agentID, probe.Fingerprint(), config.Version,
			cfg.PublishInterval, logger,
		)
		publisher.Start(ctx)
		logger.Info("inventory publishing enabled", "interval", cfg.PublishInterval.String())
	}

	api := httpserver.NewAPI(reports, logger)
	server := httpserver.NewServer(cfg.Port, api, logger)
	logger.Info("server starting", "addr", fmt.Sprintf("0.0.0.0:%d", cfg.Port))

	if err := server.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server exited with error", "err", err)
		os.Exit(1)
	}

	logger.Info("agent stopped cleanly")
}
