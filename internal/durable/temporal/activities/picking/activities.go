package picking

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"

	pickingtypes "github.com/stockroom/stockroom-api/internal/domains/picking/application/types"
	pickingports "github.com/stockroom/stockroom-api/internal/domains/picking/ports"
)

// GeneratePickListActivityName resolves an order into pick instructions.
const GeneratePickListActivityName = "picking.activities.GeneratePickList"

// Activities groups activities that operate on the picking bounded context.
type Activities struct {
	resolver pickingports.Service
}

// NewActivities wires the pick-list resolver into the Temporal activities bundle.
func NewActivities(resolver pickingports.Service) *Activities {
	return &Activities{resolver: resolver}
}

// GeneratePickList resolves the order's line items into pick instructions.
// The resolver is read-only, so retries are safe at any point.
func (a *Activities) GeneratePickList(ctx context.Context, orderID string) ([]pickingtypes.PickInstruction, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.resolver == nil {
		logger.Error("pick list activity not initialized", "orderId", orderID)
		return nil, errors.New("pick list activity not initialized")
	}
	logger.Info("GeneratePickList activity started", "orderId", orderID)
	instructions, err := a.resolver.GeneratePickList(ctx, orderID)
	if err != nil {
		logger.Error("GeneratePickList activity failed", "orderId", orderID, "error", err)
		return nil, err
	}
	logger.Info("GeneratePickList activity completed", "orderId", orderID, "instructions", len(instructions))
	return instructions, nil
}
