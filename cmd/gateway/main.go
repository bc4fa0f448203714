package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/joao-fontenele/shopflow/internal/config"
	"github.com/joao-fontenele/shopflow/internal/gateway"
	"github.com/joao-fontenele/shopflow/internal/httpx"
	"github.com/joao-fontenele/shopflow/internal/telemetry"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadGateway()
	logger := telemetry.NewLogger(os.Stdout, cfg.Name)

	providers, err := telemetry.Setup(ctx, cfg.Service, logger)
	if err != nil {
		logger.Error("failed to initialize telemetry", "error", err)
		os.Exit(1)
	}
	defer func() { _ = providers.Shutdown(context.Background()) }()

	// No client timeout: a hung downstream holds the request until the
	// caller gives up.
	httpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	handler, err := gateway.NewHandler(gateway.NewServiceRouter(cfg.ServiceURLs, httpClient), logger)
	if err != nil {
		logger.Error("failed to create gateway handler", "error", err)
		os.Exit(1)
	}

	r := httpx.NewRouter(providers.MetricsHandler)
	handler.Mount(r)

	logger.Info("routing configured",
		"user_service_url", cfg.UserServiceURL,
		"product_service_url", cfg.ProductServiceURL,
		"order_service_url", cfg.OrderServiceURL,
		"notification_service_url", cfg.NotificationServiceURL,
	)

	if err := telemetry.Serve(ctx, logger, cfg.Name, cfg.Addr(), r); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
