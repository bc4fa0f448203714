package orders

import (
	"go.opentelemetry.io/otel/metric"
)

type serviceMetrics struct {
	created            metric.Int64Counter
	sideEffectFailures metric.Int64Counter
}

func newServiceMetrics(meter metric.Meter) (*serviceMetrics, error) {
	created, err := meter.Int64Counter("orders.created",
		metric.WithDescription("Orders committed to the order store."),
		metric.WithUnit("{order}"),
	)
	if err != nil {
		return nil, err
	}

	failures, err := meter.Int64Counter("orders.side_effect.failures",
		metric.WithDescription("Best-effort order steps that failed and were skipped."),
		metric.WithUnit("{failure}"),
	)
	if err != nil {
		return nil, err
	}

	return &serviceMetrics{created: created, sideEffectFailures: failures}, nil
}
