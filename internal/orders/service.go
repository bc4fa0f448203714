package orders

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/joao-fontenele/shopflow/internal/domain"
)

var tracer = otel.Tracer("orders/service")

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProductNotFound = errors.New("product not found")
)

type UserDirectory interface {
	GetUser(ctx context.Context, id int64) (*domain.User, error)
}

type Catalog interface {
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	DecrementStock(ctx context.Context, id int64, quantity int) error
}

type Notifier interface {
	SendNotification(ctx context.Context, userID int64, message string) (*domain.Notification, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, key string, event any) error
}

const (
	stepDecrementStock = "decrement_stock"
	stepNotify         = "notify"
	stepPublishEvent   = "publish_event"
)

type Service struct {
	repo      *OrderRepository
	users     UserDirectory
	catalog   Catalog
	notifier  Notifier
	publisher EventPublisher
	metrics   *serviceMetrics
	logger    *slog.Logger
	now       func() time.Time
}

type ServiceOption func(*Service)

// WithEventPublisher makes the service publish an OrderCreatedEvent after
// every committed order.
func WithEventPublisher(p EventPublisher) ServiceOption {
	return func(s *Service) {
		s.publisher = p
	}
}

func NewService(repo *OrderRepository, users UserDirectory, catalog Catalog, notifier Notifier, logger *slog.Logger, opts ...ServiceOption) (*Service, error) {
	metrics, err := newServiceMetrics(otel.Meter("orders"))
	if err != nil {
		return nil, fmt.Errorf("create order metrics: %w", err)
	}

	s := &Service{
		repo:     repo,
		users:    users,
		catalog:  catalog,
		notifier: notifier,
		metrics:  metrics,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// CreateOrder runs the order workflow. The user and product lookups are fatal
// and happen before anything is mutated. Stock decrement, notification and
// event publication are best effort: their failures are logged and the order
// is still returned as created.
//
// Quantity is not validated, and the price is not re-read at decrement time.
func (s *Service) CreateOrder(ctx context.Context, userID, productID int64, quantity int) (*domain.Order, error) {
	ctx, span := tracer.Start(ctx, "orders.create",
		trace.WithAttributes(
			attribute.Int64("order.user_id", userID),
			attribute.Int64("order.product_id", productID),
			attribute.Int("order.quantity", quantity),
		),
	)
	defer span.End()

	if _, err := s.users.GetUser(ctx, userID); err != nil {
		s.logger.WarnContext(ctx, "user lookup failed", "error", err, "user_id", userID)
		err = fmt.Errorf("%w: %w", ErrUserNotFound, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, ErrUserNotFound.Error())
		return nil, err
	}

	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		s.logger.WarnContext(ctx, "product lookup failed", "error", err, "product_id", productID)
		err = fmt.Errorf("%w: %w", ErrProductNotFound, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, ErrProductNotFound.Error())
		return nil, err
	}

	total := product.Price.Mul(decimal.NewFromInt(int64(quantity)))

	s.bestEffort(ctx, stepDecrementStock, func(ctx context.Context) error {
		return s.catalog.DecrementStock(ctx, productID, quantity)
	})

	order := s.repo.Create(domain.Order{
		UserID:      userID,
		ProductID:   productID,
		Quantity:    quantity,
		TotalAmount: total,
		Status:      domain.OrderStatusCreated,
		CreatedAt:   s.now(),
	})
	span.SetAttributes(attribute.Int64("order.id", order.ID))
	s.metrics.created.Add(ctx, 1)

	s.bestEffort(ctx, stepNotify, func(ctx context.Context) error {
		_, err := s.notifier.SendNotification(ctx, userID, fmt.Sprintf("Order %d has been created", order.ID))
		return err
	})

	if s.publisher != nil {
		s.bestEffort(ctx, stepPublishEvent, func(ctx context.Context) error {
			return s.publisher.Publish(ctx, strconv.FormatInt(order.ID, 10), domain.OrderCreatedEvent{
				EventID:     uuid.NewString(),
				OrderID:     order.ID,
				UserID:      order.UserID,
				ProductID:   order.ProductID,
				Quantity:    order.Quantity,
				TotalAmount: order.TotalAmount,
				Timestamp:   order.CreatedAt,
			})
		})
	}

	s.logger.InfoContext(ctx, "order created",
		"order_id", order.ID, "user_id", userID, "product_id", productID, "total_amount", total.String())
	return &order, nil
}

// bestEffort runs step in its own span. A failure is logged, recorded and
// counted, then dropped.
func (s *Service) bestEffort(ctx context.Context, step string, fn func(ctx context.Context) error) {
	ctx, span := tracer.Start(ctx, "orders.create."+step)
	defer span.End()

	if err := fn(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.metrics.sideEffectFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("step", step)))
		s.logger.ErrorContext(ctx, "best-effort order step failed", "step", step, "error", err)
	}
}

func (s *Service) ListOrders() []domain.Order {
	return s.repo.List()
}

func (s *Service) GetOrder(id int64) (*domain.Order, bool) {
	return s.repo.GetByID(id)
}
