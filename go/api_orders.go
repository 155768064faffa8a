package stockroomserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ordershttpmapper "github.com/stockroom/stockroom-api/internal/domains/orders/adapters/http/mapper"
	ordersdomain "github.com/stockroom/stockroom-api/internal/domains/orders/domain"
	ordersports "github.com/stockroom/stockroom-api/internal/domains/orders/ports"
)

// OrdersAPI wires HTTP transport with the orders bounded context service.
type OrdersAPI struct {
	service ordersports.Service
}

// NewOrdersAPI creates an OrdersAPI backed by the provided service.
func NewOrdersAPI(service ordersports.Service) OrdersAPI {
	return OrdersAPI{service: service}
}

// Post /v1/orders
// Place a new order
func (api *OrdersAPI) PlaceOrder(c *gin.Context) {
	var payload ordershttpmapper.Order
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	order, err := ordershttpmapper.ToDomainOrder(payload)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	saved, err := api.service.PlaceOrder(c.Request.Context(), order)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ordershttpmapper.FromDomainOrder(saved))
}

// Get /v1/orders
// List orders
func (api *OrdersAPI) ListOrders(c *gin.Context) {
	orders, err := api.service.ListOrders(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordershttpmapper.FromDomainOrders(orders))
}

// Get /v1/orders/:orderId
// Find order by ID
func (api *OrdersAPI) GetOrderById(c *gin.Context) {
	id, ok := requireParam(c, "orderId")
	if !ok {
		return
	}
	order, err := api.service.GetOrderByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordershttpmapper.FromDomainOrder(order))
}

// Delete /v1/orders/:orderId
// Delete an order
func (api *OrdersAPI) DeleteOrder(c *gin.Context) {
	id, ok := requireParam(c, "orderId")
	if !ok {
		return
	}
	if err := api.service.DeleteOrder(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type orderStatusUpdate struct {
	Status string `json:"status" binding:"required"`
}

// Put /v1/orders/:orderId/status
// Update the fulfillment status of an order
func (api *OrdersAPI) UpdateOrderStatus(c *gin.Context) {
	id, ok := requireParam(c, "orderId")
	if !ok {
		return
	}
	var payload orderStatusUpdate
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	updated, err := api.service.UpdateOrderStatus(c.Request.Context(), id, ordersdomain.Status(payload.Status))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordershttpmapper.FromDomainOrder(updated))
}

// Get /v1/inventory/status
// Returns ordered quantities grouped by order status
func (api *OrdersAPI) GetInventoryStatus(c *gin.Context) {
	summary, err := api.service.QuantitiesByStatus(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
