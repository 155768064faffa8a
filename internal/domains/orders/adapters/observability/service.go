package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	ordersdomain "github.com/stockroom/stockroom-api/internal/domains/orders/domain"
	ordersports "github.com/stockroom/stockroom-api/internal/domains/orders/ports"
)

const tracerName = "github.com/stockroom/stockroom-api/internal/domains/orders/adapters/observability/service"

// Service decorates the orders service with tracing, logging, and metrics.
type Service struct {
	inner   ordersports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core orders service.
func New(inner ordersports.Service, opts ...Option) ordersports.Service {
	s := &Service{
		inner:  inner,
		tracer: nooptrace.NewTracerProvider().Tracer(tracerName),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) PlaceOrder(ctx context.Context, order *ordersdomain.Order) (*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.PlaceOrder",
		trace.WithAttributes(attribute.String("order.id", order.ID), attribute.Int("order.items", len(order.Items))))
	defer span.End()

	s.logInfo(ctx, "placing order", slog.String("order.id", order.ID), slog.Int("order.items", len(order.Items)))
	result, err := s.inner.PlaceOrder(ctx, order)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to place order", slog.String("order.id", order.ID))
	}
	s.metrics.recordPlaced(ctx, result.Status)
	s.logInfo(ctx, "order placed", slog.String("order.id", result.ID), slog.String("status", string(result.Status)))
	return result, nil
}

func (s *Service) GetOrderByID(ctx context.Context, id string) (*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.GetOrderByID", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	result, err := s.inner.GetOrderByID(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load order", slog.String("order.id", id))
	}
	return result, nil
}

func (s *Service) DeleteOrder(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "OrderService.DeleteOrder", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	s.logInfo(ctx, "deleting order", slog.String("order.id", id))
	if err := s.inner.DeleteOrder(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "failed to delete order", slog.String("order.id", id))
	}
	s.metrics.recordDeleted(ctx)
	return nil
}

func (s *Service) ListOrders(ctx context.Context) ([]*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.ListOrders")
	defer span.End()

	result, err := s.inner.ListOrders(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders")
	}
	span.SetAttributes(attribute.Int("orders.count", len(result)))
	return result, nil
}

func (s *Service) UpdateOrderStatus(ctx context.Context, id string, status ordersdomain.Status) (*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.UpdateOrderStatus",
		trace.WithAttributes(attribute.String("order.id", id), attribute.String("order.status", string(status))))
	defer span.End()

	s.logInfo(ctx, "updating order status", slog.String("order.id", id), slog.String("status", string(status)))
	result, err := s.inner.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update order status", slog.String("order.id", id))
	}
	return result, nil
}

func (s *Service) QuantitiesByStatus(ctx context.Context) (map[string]int32, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.QuantitiesByStatus")
	defer span.End()

	result, err := s.inner.QuantitiesByStatus(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to aggregate quantities")
	}
	span.SetAttributes(attribute.Int("orders.status.count", len(result)))
	return result, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if s.logger != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
	}
	return err
}

type serviceMetrics struct {
	ordersPlaced  metric.Int64Counter
	ordersDeleted metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	placed, _ := m.Int64Counter("orders.service.orders_placed", metric.WithDescription("Number of orders placed"))
	deleted, _ := m.Int64Counter("orders.service.orders_deleted", metric.WithDescription("Number of orders deleted"))
	return serviceMetrics{ordersPlaced: placed, ordersDeleted: deleted}
}

func (m serviceMetrics) recordPlaced(ctx context.Context, status ordersdomain.Status) {
	if m.ordersPlaced != nil {
		m.ordersPlaced.Add(ctx, 1, metric.WithAttributes(attribute.String("order.status", string(status))))
	}
}

func (m serviceMetrics) recordDeleted(ctx context.Context) {
	if m.ordersDeleted != nil {
		m.ordersDeleted.Add(ctx, 1)
	}
}

var _ ordersports.Service = (*Service)(nil)
