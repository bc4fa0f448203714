package telemetry

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/joao-fontenele/shopflow/internal/config"
)

// Providers bundles what a service main needs from telemetry setup.
type Providers struct {
	MetricsHandler http.Handler
	shutdown       []func(context.Context) error
}

// Setup initializes tracing (unless disabled) and metrics for a service.
func Setup(ctx context.Context, cfg config.Service, logger *slog.Logger) (*Providers, error) {
	p := &Providers{}

	if cfg.OTelEnabled {
		shutdownTracer, err := InitTracerProvider(ctx, cfg.OTelEndpoint, cfg.Name, cfg.Version)
		if err != nil {
			return nil, err
		}
		p.shutdown = append(p.shutdown, shutdownTracer)
	} else {
		logger.Info("tracing disabled")
	}

	metricsHandler, shutdownMeter, err := InitMeterProvider(cfg.Name, cfg.Version)
	if err != nil {
		_ = p.Shutdown(ctx)
		return nil, err
	}
	p.MetricsHandler = metricsHandler
	p.shutdown = append(p.shutdown, shutdownMeter)

	return p, nil
}

func (p *Providers) Shutdown(ctx context.Context) error {
	var errs []error
	for _, fn := range p.shutdown {
		if err := fn(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
