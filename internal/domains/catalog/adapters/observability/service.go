package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	catalogdomain "github.com/stockroom/stockroom-api/internal/domains/catalog/domain"
	catalogports "github.com/stockroom/stockroom-api/internal/domains/catalog/ports"
)

const tracerName = "github.com/stockroom/stockroom-api/internal/domains/catalog/adapters/observability/service"

// Service decorates the catalog service with tracing, logging, and metrics.
type Service struct {
	inner   catalogports.Service
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

// New wraps the core catalog service.
func New(inner catalogports.Service, opts ...Option) catalogports.Service {
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

func (s *Service) AddProduct(ctx context.Context, product *catalogdomain.Product) (*catalogdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.AddProduct",
		trace.WithAttributes(attribute.String("product.id", product.ID)))
	defer span.End()

	s.logInfo(ctx, "adding product", slog.String("product.id", product.ID), slog.String("product.name", product.Name))
	result, err := s.inner.AddProduct(ctx, product)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to add product", slog.String("product.id", product.ID))
	}
	s.metrics.recordAdded(ctx)
	s.logInfo(ctx, "product added", slog.String("product.id", result.ID))
	return result, nil
}

func (s *Service) GetProductByID(ctx context.Context, id string) (*catalogdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.GetProductByID", trace.WithAttributes(attribute.String("product.id", id)))
	defer span.End()

	result, err := s.inner.GetProductByID(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load product", slog.String("product.id", id))
	}
	return result, nil
}

func (s *Service) UpdateProduct(ctx context.Context, id string, updated *catalogdomain.Product) (*catalogdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.UpdateProduct", trace.WithAttributes(attribute.String("product.id", id)))
	defer span.End()

	s.logInfo(ctx, "updating product", slog.String("product.id", id))
	result, err := s.inner.UpdateProduct(ctx, id, updated)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update product", slog.String("product.id", id))
	}
	s.logInfo(ctx, "product updated", slog.String("product.id", result.ID))
	return result, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "CatalogService.DeleteProduct", trace.WithAttributes(attribute.String("product.id", id)))
	defer span.End()

	s.logInfo(ctx, "deleting product", slog.String("product.id", id))
	if err := s.inner.DeleteProduct(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "failed to delete product", slog.String("product.id", id))
	}
	s.metrics.recordDeleted(ctx)
	return nil
}

func (s *Service) ListProducts(ctx context.Context) ([]*catalogdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.ListProducts")
	defer span.End()

	result, err := s.inner.ListProducts(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list products")
	}
	span.SetAttributes(attribute.Int("catalog.products.count", len(result)))
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
	productsAdded   metric.Int64Counter
	productsDeleted metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	added, _ := m.Int64Counter("catalog.service.products_added", metric.WithDescription("Number of products added"))
	deleted, _ := m.Int64Counter("catalog.service.products_deleted", metric.WithDescription("Number of products deleted"))
	return serviceMetrics{productsAdded: added, productsDeleted: deleted}
}

func (m serviceMetrics) recordAdded(ctx context.Context) {
	if m.productsAdded != nil {
		m.productsAdded.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordDeleted(ctx context.Context) {
	if m.productsDeleted != nil {
		m.productsDeleted.Add(ctx, 1)
	}
}

var _ catalogports.Service = (*Service)(nil)
