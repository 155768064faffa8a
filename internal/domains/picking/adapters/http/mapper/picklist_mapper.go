package mapper

import (
	pickingtypes "github.com/stockroom/stockroom-api/internal/domains/picking/application/types"
	warehousemapper "github.com/stockroom/stockroom-api/internal/domains/warehouse/adapters/http/mapper"
)

// PickInstruction is the HTTP representation of a single picking step.
type PickInstruction struct {
	ProductName        string                            `json:"productName"`
	ProductID          string                            `json:"productId"`
	QuantityToPick     int32                             `json:"quantityToPick"`
	AvailableLocations []warehousemapper.StorageLocation `json:"availableLocations"`
}

// PickList wraps the ordered instructions for an order.
type PickList struct {
	OrderID      string            `json:"orderId"`
	Instructions []PickInstruction `json:"instructions"`
}

// FromDomainInstruction converts a resolved instruction to transport form.
func FromDomainInstruction(instruction pickingtypes.PickInstruction) PickInstruction {
	return PickInstruction{
		ProductName:        instruction.ProductName,
		ProductID:          instruction.ProductID,
		QuantityToPick:     instruction.QuantityToPick,
		AvailableLocations: warehousemapper.FromDomainLocationValues(instruction.AvailableLocations),
	}
}

// FromDomainInstructions converts a pick list preserving instruction order.
func FromDomainInstructions(orderID string, instructions []pickingtypes.PickInstruction) PickList {
	result := PickList{OrderID: orderID, Instructions: make([]PickInstruction, 0, len(instructions))}
	for _, instruction := range instructions {
		result.Instructions = append(result.Instructions, FromDomainInstruction(instruction))
	}
	return result
}
