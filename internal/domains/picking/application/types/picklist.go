package types

import (
	warehousedomain "github.com/stockroom/stockroom-api/internal/domains/warehouse/domain"
)

// PickInstruction tells a warehouse worker what product, how much, and from
// which candidate locations to retrieve for one order line item. It is derived
// on demand and never persisted; it goes stale as soon as the underlying
// order, product, or placement data changes.
type PickInstruction struct {
	ProductName        string
	ProductID          string
	QuantityToPick     int32
	AvailableLocations []warehousedomain.StorageLocation
}
