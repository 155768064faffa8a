package ports

import (
	"context"

	pickingtypes "github.com/stockroom/stockroom-api/internal/domains/picking/application/types"
)

// WorkflowOrchestrator starts pick-list generation, either inline or on a
// durable execution engine.
type WorkflowOrchestrator interface {
	GeneratePickList(ctx context.Context, orderID string) ([]pickingtypes.PickInstruction, error)
}
