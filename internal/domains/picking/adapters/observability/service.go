package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	pickingtypes "github.com/stockroom/stockroom-api/internal/domains/picking/application/types"
	pickingports "github.com/stockroom/stockroom-api/internal/domains/picking/ports"
)

const tracerName = "github.com/stockroom/stockroom-api/internal/domains/picking/adapters/observability/service"

// Service decorates the pick-list resolver with tracing, logging, and metrics.
type Service struct {
	inner   pickingports.Service
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

// New wraps the core resolver.
func New(inner pickingports.Service, opts ...Option) pickingports.Service {
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

func (s *Service) GeneratePickList(ctx context.Context, orderID string) ([]pickingtypes.PickInstruction, error) {
	ctx, span := s.tracer.Start(ctx, "PickingService.GeneratePickList",
		trace.WithAttributes(attribute.String("order.id", orderID)))
	defer span.End()

	s.logInfo(ctx, "generating pick list", slog.String("order.id", orderID))
	instructions, err := s.inner.GeneratePickList(ctx, orderID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to generate pick list", slog.String("order.id", orderID))
	}
	s.metrics.recordGenerated(ctx, len(instructions))
	span.SetAttributes(attribute.Int("picklist.instructions", len(instructions)))
	s.logInfo(ctx, "pick list generated", slog.String("order.id", orderID), slog.Int("instructions", len(instructions)))
	return instructions, nil
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
	pickListsGenerated metric.Int64Counter
	instructionsTotal  metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	generated, _ := m.Int64Counter("picking.service.pick_lists_generated", metric.WithDescription("Number of pick lists generated"))
	instructions, _ := m.Int64Counter("picking.service.instructions_emitted", metric.WithDescription("Number of pick instructions emitted"))
	return serviceMetrics{pickListsGenerated: generated, instructionsTotal: instructions}
}

func (m serviceMetrics) recordGenerated(ctx context.Context, instructions int) {
	if m.pickListsGenerated != nil {
		m.pickListsGenerated.Add(ctx, 1)
	}
	if m.instructionsTotal != nil {
		m.instructionsTotal.Add(ctx, int64(instructions))
	}
}

var _ pickingports.Service = (*Service)(nil)
