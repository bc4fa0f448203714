package test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/joao-fontenele/shopflow/internal/clients"
	"github.com/joao-fontenele/shopflow/internal/config"
	"github.com/joao-fontenele/shopflow/internal/gateway"
	"github.com/joao-fontenele/shopflow/internal/httpx"
	"github.com/joao-fontenele/shopflow/internal/notifications"
	"github.com/joao-fontenele/shopflow/internal/orders"
	"github.com/joao-fontenele/shopflow/internal/products"
	"github.com/joao-fontenele/shopflow/internal/users"
)

// Stack is every service running in-process behind its own httptest server,
// fronted by the gateway.
type Stack struct {
	Gateway       *httptest.Server
	Products      *products.ProductRepository
	Notifications *notifications.NotificationRepository
}

func StartStack(t *testing.T, opts ...orders.ServiceOption) *Stack {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	serve := func(register func(r chi.Router)) *httptest.Server {
		r := httpx.NewRouter(nil)
		register(r)
		s := httptest.NewServer(r)
		t.Cleanup(s.Close)
		return s
	}

	userServer := serve(users.NewHandler(users.NewSeededUserRepository(), logger).Register)

	productRepo := products.NewSeededProductRepository()
	productServer := serve(products.NewHandler(productRepo, logger).Register)

	notificationRepo := notifications.NewNotificationRepository()
	notificationServer := serve(notifications.NewHandler(notificationRepo, logger).Register)

	service, err := orders.NewService(
		orders.NewOrderRepository(),
		clients.NewUserClient(userServer.URL, http.DefaultClient),
		clients.NewProductClient(productServer.URL, http.DefaultClient),
		clients.NewNotificationClient(notificationServer.URL, http.DefaultClient),
		logger,
		opts...,
	)
	if err != nil {
		t.Fatalf("failed to create order service: %v", err)
	}
	orderServer := serve(orders.NewHandler(service, logger).Register)

	handler, err := gateway.NewHandler(gateway.NewServiceRouter(config.ServiceURLs{
		UserServiceURL:         userServer.URL,
		ProductServiceURL:      productServer.URL,
		OrderServiceURL:        orderServer.URL,
		NotificationServiceURL: notificationServer.URL,
	}, http.DefaultClient), logger)
	if err != nil {
		t.Fatalf("failed to create gateway handler: %v", err)
	}
	gatewayRouter := httpx.NewRouter(nil)
	handler.Mount(gatewayRouter)
	gatewayServer := httptest.NewServer(gatewayRouter)
	t.Cleanup(gatewayServer.Close)

	return &Stack{
		Gateway:       gatewayServer,
		Products:      productRepo,
		Notifications: notificationRepo,
	}
}
