package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	pickingtypes "github.com/stockroom/stockroom-api/internal/domains/picking/application/types"
	"github.com/stockroom/stockroom-api/internal/domains/picking/ports"
	pickworkflows "github.com/stockroom/stockroom-api/internal/durable/temporal/workflows/picking"
)

var (
	_ ports.WorkflowOrchestrator = (*TemporalPickWorkflows)(nil)
	_ ports.WorkflowOrchestrator = (*InlinePickWorkflows)(nil)
)

// TemporalPickWorkflows starts pick-list workflows on a Temporal cluster.
type TemporalPickWorkflows struct {
	client    client.Client
	taskQueue string
}

// NewTemporalPickWorkflows wires a Temporal client into the orchestrator.
func NewTemporalPickWorkflows(c client.Client) *TemporalPickWorkflows {
	return &TemporalPickWorkflows{client: c, taskQueue: pickworkflows.PickListTaskQueue}
}

// GeneratePickList starts the durable workflow and waits for its result.
// Generation is read-only and idempotent, so joining an already-running
// workflow for the same order is safe.
func (o *TemporalPickWorkflows) GeneratePickList(ctx context.Context, orderID string) ([]pickingtypes.PickInstruction, error) {
	if o == nil || o.client == nil {
		return nil, errors.New("temporal pick workflows not configured")
	}
	traceComponent := workflowTraceComponent(ctx)
	options := client.StartWorkflowOptions{
		ID:        fmt.Sprintf("pick-list-%s-%s", orderID, traceComponent),
		TaskQueue: o.taskQueue,
	}
	run, err := o.client.ExecuteWorkflow(
		ctx,
		options,
		pickworkflows.PickListWorkflowName,
		pickworkflows.PickListWorkflowInput{OrderID: orderID, TraceID: traceComponent},
	)
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &alreadyStarted) {
			existingRun := o.client.GetWorkflow(ctx, options.ID, alreadyStarted.RunId)
			var instructions []pickingtypes.PickInstruction
			if err := existingRun.Get(ctx, &instructions); err != nil {
				return nil, err
			}
			return instructions, nil
		}
		return nil, err
	}
	var instructions []pickingtypes.PickInstruction
	if err := run.Get(ctx, &instructions); err != nil {
		return nil, err
	}
	return instructions, nil
}

// InlinePickWorkflows executes the resolver directly without Temporal, useful
// for tests or dev fallbacks.
type InlinePickWorkflows struct {
	resolver ports.Service
}

// NewInlinePickWorkflows wraps the resolver for synchronous execution.
func NewInlinePickWorkflows(resolver ports.Service) *InlinePickWorkflows {
	return &InlinePickWorkflows{resolver: resolver}
}

// GeneratePickList delegates to the resolver without durable orchestration.
func (o *InlinePickWorkflows) GeneratePickList(ctx context.Context, orderID string) ([]pickingtypes.PickInstruction, error) {
	if o == nil || o.resolver == nil {
		return nil, errors.New("inline pick workflows not configured")
	}
	return o.resolver.GeneratePickList(ctx, orderID)
}

func workflowTraceComponent(ctx context.Context) string {
	if traceID := workflowTraceID(ctx); traceID != "" {
		return traceID
	}
	return fmt.Sprintf("fallback-%d", time.Now().UnixNano())
}

func workflowTraceID(ctx context.Context) string {
	span := oteltrace.SpanFromContext(ctx)
	if span == nil {
		return ""
	}
	spanCtx := span.SpanContext()
	if !spanCtx.IsValid() {
		return ""
	}
	traceID := spanCtx.TraceID()
	if !traceID.IsValid() {
		return ""
	}
	return traceID.String()
}
