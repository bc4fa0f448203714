package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joao-fontenele/shopflow/internal/config"
	"github.com/joao-fontenele/shopflow/internal/httpx"
	"github.com/joao-fontenele/shopflow/internal/users"
	"github.com/joao-fontenele/shopflow/internal/telemetry"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadService("users")
	logger := telemetry.NewLogger(os.Stdout, cfg.Name)

	providers, err := telemetry.Setup(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize telemetry", "error", err)
		os.Exit(1)
	}
	defer func() { _ = providers.Shutdown(context.Background()) }()

	r := httpx.NewRouter(providers.MetricsHandler)
	users.NewHandler(users.NewSeededUserRepository(), logger).Register(r)

	if err := telemetry.Serve(ctx, logger, cfg.Name, cfg.Addr(), r); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
