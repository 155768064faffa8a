package ports

import (
	"context"

	pickingtypes "github.com/stockroom/stockroom-api/internal/domains/picking/application/types"
)

// Service exposes pick-list generation to adapters.
type Service interface {
	GeneratePickList(ctx context.Context, orderID string) ([]pickingtypes.PickInstruction, error)
}
