package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/joao-fontenele/shopflow/internal/clients"
	"github.com/joao-fontenele/shopflow/internal/config"
	"github.com/joao-fontenele/shopflow/internal/httpx"
	"github.com/joao-fontenele/shopflow/internal/messaging"
	"github.com/joao-fontenele/shopflow/internal/orders"
	"github.com/joao-fontenele/shopflow/internal/telemetry"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadOrders()
	logger := telemetry.NewLogger(os.Stdout, cfg.Name)

	providers, err := telemetry.Setup(ctx, cfg.Service, logger)
	if err != nil {
		logger.Error("failed to initialize telemetry", "error", err)
		os.Exit(1)
	}
	defer func() { _ = providers.Shutdown(context.Background()) }()

	httpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	var opts []orders.ServiceOption
	if len(cfg.KafkaBrokers) > 0 {
		producer := messaging.NewProducer(cfg.KafkaBrokers, cfg.EventsTopic)
		defer func() { _ = producer.Close() }()
		opts = append(opts, orders.WithEventPublisher(producer))
		logger.Info("publishing order events", "brokers", cfg.KafkaBrokers, "topic", cfg.EventsTopic)
	}

	service, err := orders.NewService(
		orders.NewOrderRepository(),
		clients.NewUserClient(cfg.UserServiceURL, httpClient),
		clients.NewProductClient(cfg.ProductServiceURL, httpClient),
		clients.NewNotificationClient(cfg.NotificationServiceURL, httpClient),
		logger,
		opts...,
	)
	if err != nil {
		logger.Error("failed to create order service", "error", err)
		os.Exit(1)
	}

	r := httpx.NewRouter(providers.MetricsHandler)
	orders.NewHandler(service, logger).Register(r)

	if err := telemetry.Serve(ctx, logger, cfg.Name, cfg.Addr(), r); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
