package picking

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	pickingtypes "github.com/stockroom/stockroom-api/internal/domains/picking/application/types"
	pickingactivities "github.com/stockroom/stockroom-api/internal/durable/temporal/activities/picking"
)

const (
	// PickListWorkflowName is the public identifier for registering the workflow.
	PickListWorkflowName = "picking.workflows.GeneratePickList"
	// PickListTaskQueue is the queue consumed by the worker processing picking workflows.
	PickListTaskQueue = "PICK_LIST_GENERATION"
)

// PickListWorkflowInput captures the payload required to generate a pick list.
type PickListWorkflowInput struct {
	OrderID string
	TraceID string
}

// PickListWorkflow orchestrates pick-list generation for an order.
func PickListWorkflow(ctx workflow.Context, input PickListWorkflowInput) ([]pickingtypes.PickInstruction, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("PickListWorkflow started", withTraceID(input.TraceID, "orderId", input.OrderID)...)

	ao := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    30 * time.Second,
			MaximumAttempts:    3,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, ao)

	var instructions []pickingtypes.PickInstruction
	err := workflow.ExecuteActivity(ctx, pickingactivities.GeneratePickListActivityName, input.OrderID).Get(ctx, &instructions)
	if err != nil {
		logger.Error("PickListWorkflow failed", withTraceID(input.TraceID, "orderId", input.OrderID, "error", err)...)
		return nil, err
	}
	logger.Info("PickListWorkflow completed", withTraceID(input.TraceID, "orderId", input.OrderID, "instructions", len(instructions))...)
	return instructions, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
