// Package config reads service configuration from the environment into plain
// structs that are handed to constructors at startup.
package config

import (
	"os"
	"strings"
)

const (
	DefaultUserServiceURL         = "http://user-service:8080"
	DefaultProductServiceURL      = "http://product-service:8080"
	DefaultOrderServiceURL        = "http://order-service:8080"
	DefaultNotificationServiceURL = "http://notification-service:8080"
	DefaultOrderEventsTopic       = "order.created"
)

// Service holds what every binary needs regardless of its role.
type Service struct {
	Name         string
	Version      string
	Port         string
	OTelEnabled  bool
	OTelEndpoint string
}

// ServiceURLs are the base addresses of the collaborators. Paths are appended
// verbatim, so they carry no trailing slash.
type ServiceURLs struct {
	UserServiceURL         string
	ProductServiceURL      string
	OrderServiceURL        string
	NotificationServiceURL string
}

type Gateway struct {
	Service
	ServiceURLs
}

type Orders struct {
	Service
	ServiceURLs
	KafkaBrokers []string
	EventsTopic  string
}

func LoadService(name string) Service {
	return Service{
		Name:         name,
		Version:      getenv("SERVICE_VERSION", "0.1.0"),
		Port:         getenv("PORT", "8080"),
		OTelEnabled:  getenv("OTEL_ENABLED", "true") != "false",
		OTelEndpoint: getenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
	}
}

func LoadServiceURLs() ServiceURLs {
	return ServiceURLs{
		UserServiceURL:         trimURL(getenv("USER_SERVICE_URL", DefaultUserServiceURL)),
		ProductServiceURL:      trimURL(getenv("PRODUCT_SERVICE_URL", DefaultProductServiceURL)),
		OrderServiceURL:        trimURL(getenv("ORDER_SERVICE_URL", DefaultOrderServiceURL)),
		NotificationServiceURL: trimURL(getenv("NOTIFICATION_SERVICE_URL", DefaultNotificationServiceURL)),
	}
}

func LoadGateway() Gateway {
	return Gateway{
		Service:     LoadService("gateway"),
		ServiceURLs: LoadServiceURLs(),
	}
}

func LoadOrders() Orders {
	cfg := Orders{
		Service:     LoadService("orders"),
		ServiceURLs: LoadServiceURLs(),
		EventsTopic: getenv("ORDER_EVENTS_TOPIC", DefaultOrderEventsTopic),
	}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	return cfg
}

func (s Service) Addr() string {
	return ":" + s.Port
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func trimURL(u string) string {
	return strings.TrimRight(u, "/")
}
