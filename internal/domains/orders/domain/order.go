package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Status enumerates order progression.
type Status string

const (
	StatusPlaced    Status = "placed"
	StatusPicking   Status = "picking"
	StatusFulfilled Status = "fulfilled"
)

var (
	ErrEmptyProductRef = errors.New("order item product id is required")
	ErrInvalidQuantity = errors.New("order item quantity must be greater than zero")
	ErrInvalidStatus   = errors.New("order status is invalid")
	ErrNegativeTotal   = errors.New("order total must not be negative")
)

// OrderItem is a (product, quantity) pair within an order. Line position is
// significant: pick lists are generated in line-item order.
type OrderItem struct {
	ProductID string
	Quantity  int32
}

// Validate enforces line-item invariants.
func (i OrderItem) Validate() error {
	if strings.TrimSpace(i.ProductID) == "" {
		return ErrEmptyProductRef
	}
	if i.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	return nil
}

// Order models a customer purchase request composed of line items.
type Order struct {
	ID          string
	CustomerRef string
	PlacedAt    time.Time
	Total       decimal.Decimal
	Status      Status
	Items       []OrderItem
}

// NewOrder validates and constructs a new Order aggregate.
func NewOrder(id, customerRef string, placedAt time.Time, total decimal.Decimal, status Status, items []OrderItem) (*Order, error) {
	order := &Order{
		ID:          strings.TrimSpace(id),
		CustomerRef: strings.TrimSpace(customerRef),
		PlacedAt:    placedAt,
		Total:       total,
		Items:       items,
	}
	if err := order.UpdateStatus(status); err != nil {
		return nil, err
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	return order, nil
}

// Validate enforces invariants on the aggregate.
func (o *Order) Validate() error {
	if o.Total.IsNegative() {
		return ErrNegativeTotal
	}
	if !isValidStatus(o.Status) {
		return ErrInvalidStatus
	}
	for _, item := range o.Items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// UpdateStatus ensures only known states are accepted and defaults to placed.
func (o *Order) UpdateStatus(status Status) error {
	if status == "" {
		status = StatusPlaced
	}
	if !isValidStatus(status) {
		return ErrInvalidStatus
	}
	o.Status = status
	return nil
}

func isValidStatus(status Status) bool {
	switch status {
	case StatusPlaced, StatusPicking, StatusFulfilled:
		return true
	default:
		return false
	}
}
