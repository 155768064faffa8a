package stockroomserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	pickinghttpmapper "github.com/stockroom/stockroom-api/internal/domains/picking/adapters/http/mapper"
	pickingtypes "github.com/stockroom/stockroom-api/internal/domains/picking/application/types"
	pickingports "github.com/stockroom/stockroom-api/internal/domains/picking/ports"
)

// PickingAPI wires HTTP transport with the pick-list resolver and workflows.
type PickingAPI struct {
	service   pickingports.Service
	workflows pickingports.WorkflowOrchestrator
}

// NewPickingAPI creates a PickingAPI backed by the provided service.
func NewPickingAPI(service pickingports.Service, workflows pickingports.WorkflowOrchestrator) PickingAPI {
	return PickingAPI{service: service, workflows: workflows}
}

// Get /v1/orders/:orderId/picklist
// Resolve the order's line items into warehouse pick instructions. An unknown
// order yields an empty pick list rather than an error.
func (api *PickingAPI) GetPickList(c *gin.Context) {
	orderID, ok := requireParam(c, "orderId")
	if !ok {
		return
	}
	instructions, err := api.generate(c.Request.Context(), orderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, pickinghttpmapper.FromDomainInstructions(orderID, instructions))
}

func (api *PickingAPI) generate(ctx context.Context, orderID string) ([]pickingtypes.PickInstruction, error) {
	if api.workflows != nil {
		return api.workflows.GeneratePickList(ctx, orderID)
	}
	return api.service.GeneratePickList(ctx, orderID)
}
