package mapper

import (
	"time"

	"github.com/shopspring/decimal"

	ordersdomain "github.com/stockroom/stockroom-api/internal/domains/orders/domain"
)

// OrderItem is the HTTP representation of a line item.
type OrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int32  `json:"quantity"`
}

// Order represents the transport-layer order payload.
type Order struct {
	ID          string      `json:"id,omitempty"`
	CustomerRef string      `json:"customerRef,omitempty"`
	PlacedAt    time.Time   `json:"placedAt,omitempty"`
	Total       string      `json:"total,omitempty"`
	Status      string      `json:"status,omitempty"`
	Items       []OrderItem `json:"items"`
}

// ToDomainOrder converts a transport order into the orders domain model.
func ToDomainOrder(input Order) (*ordersdomain.Order, error) {
	total := decimal.Zero
	if input.Total != "" {
		parsed, err := decimal.NewFromString(input.Total)
		if err != nil {
			return nil, err
		}
		total = parsed
	}
	items := make([]ordersdomain.OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, ordersdomain.OrderItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return ordersdomain.NewOrder(
		input.ID,
		input.CustomerRef,
		input.PlacedAt,
		total,
		ordersdomain.Status(input.Status),
		items,
	)
}

// FromDomainOrder converts a domain order to the transport representation.
func FromDomainOrder(order *ordersdomain.Order) Order {
	if order == nil {
		return Order{}
	}
	items := make([]OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return Order{
		ID:          order.ID,
		CustomerRef: order.CustomerRef,
		PlacedAt:    order.PlacedAt,
		Total:       order.Total.StringFixed(2),
		Status:      string(order.Status),
		Items:       items,
	}
}

// FromDomainOrders converts a slice of domain orders.
func FromDomainOrders(orders []*ordersdomain.Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, FromDomainOrder(order))
	}
	return result
}
