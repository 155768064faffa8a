package stockroomserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
}

// Routes is the list of the generated Route.
type Routes []Route

// ApiHandleFunctions groups the handlers per API section.
type ApiHandleFunctions struct {
	CatalogAPI   CatalogAPI
	WarehouseAPI WarehouseAPI
	OrdersAPI    OrdersAPI
	PickingAPI   PickingAPI
	UserAPI      UserAPI
}

// NewRouter returns a new router.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine adds the routes to an existing gin engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = DefaultHandleFunc
		}
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			router.POST(route.Pattern, route.HandlerFunc)
		case http.MethodPut:
			router.PUT(route.Pattern, route.HandlerFunc)
		case http.MethodPatch:
			router.PATCH(route.Pattern, route.HandlerFunc)
		case http.MethodDelete:
			router.DELETE(route.Pattern, route.HandlerFunc)
		}
	}
	return router
}

// DefaultHandleFunc used when a route has no handler configured.
func DefaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

func getRoutes(handleFunctions ApiHandleFunctions) []Route {
	return []Route{
		{
			"AddProduct",
			http.MethodPost,
			"/v1/products",
			handleFunctions.CatalogAPI.AddProduct,
		},
		{
			"ListProducts",
			http.MethodGet,
			"/v1/products",
			handleFunctions.CatalogAPI.ListProducts,
		},
		{
			"GetProductById",
			http.MethodGet,
			"/v1/products/:productId",
			handleFunctions.CatalogAPI.GetProductById,
		},
		{
			"UpdateProduct",
			http.MethodPut,
			"/v1/products/:productId",
			handleFunctions.CatalogAPI.UpdateProduct,
		},
		{
			"DeleteProduct",
			http.MethodDelete,
			"/v1/products/:productId",
			handleFunctions.CatalogAPI.DeleteProduct,
		},
		{
			"LocationsForProduct",
			http.MethodGet,
			"/v1/products/:productId/locations",
			handleFunctions.WarehouseAPI.LocationsForProduct,
		},
		{
			"AddLocation",
			http.MethodPost,
			"/v1/locations",
			handleFunctions.WarehouseAPI.AddLocation,
		},
		{
			"ListLocations",
			http.MethodGet,
			"/v1/locations",
			handleFunctions.WarehouseAPI.ListLocations,
		},
		{
			"GetLocationById",
			http.MethodGet,
			"/v1/locations/:locationId",
			handleFunctions.WarehouseAPI.GetLocationById,
		},
		{
			"UpdateLocation",
			http.MethodPut,
			"/v1/locations/:locationId",
			handleFunctions.WarehouseAPI.UpdateLocation,
		},
		{
			"DeleteLocation",
			http.MethodDelete,
			"/v1/locations/:locationId",
			handleFunctions.WarehouseAPI.DeleteLocation,
		},
		{
			"AssignProduct",
			http.MethodPut,
			"/v1/locations/:locationId/products/:productId",
			handleFunctions.WarehouseAPI.AssignProduct,
		},
		{
			"UnassignProduct",
			http.MethodDelete,
			"/v1/locations/:locationId/products/:productId",
			handleFunctions.WarehouseAPI.UnassignProduct,
		},
		{
			"PlaceOrder",
			http.MethodPost,
			"/v1/orders",
			handleFunctions.OrdersAPI.PlaceOrder,
		},
		{
			"ListOrders",
			http.MethodGet,
			"/v1/orders",
			handleFunctions.OrdersAPI.ListOrders,
		},
		{
			"GetOrderById",
			http.MethodGet,
			"/v1/orders/:orderId",
			handleFunctions.OrdersAPI.GetOrderById,
		},
		{
			"DeleteOrder",
			http.MethodDelete,
			"/v1/orders/:orderId",
			handleFunctions.OrdersAPI.DeleteOrder,
		},
		{
			"UpdateOrderStatus",
			http.MethodPut,
			"/v1/orders/:orderId/status",
			handleFunctions.OrdersAPI.UpdateOrderStatus,
		},
		{
			"GetInventoryStatus",
			http.MethodGet,
			"/v1/inventory/status",
			handleFunctions.OrdersAPI.GetInventoryStatus,
		},
		{
			"GetPickList",
			http.MethodGet,
			"/v1/orders/:orderId/picklist",
			handleFunctions.PickingAPI.GetPickList,
		},
		{
			"CreateUser",
			http.MethodPost,
			"/v1/users",
			handleFunctions.UserAPI.CreateUser,
		},
		{
			"CreateUsersWithListInput",
			http.MethodPost,
			"/v1/users/createWithList",
			handleFunctions.UserAPI.CreateUsersWithListInput,
		},
		{
			"GetUserByName",
			http.MethodGet,
			"/v1/users/:username",
			handleFunctions.UserAPI.GetUserByName,
		},
		{
			"UpdateUser",
			http.MethodPut,
			"/v1/users/:username",
			handleFunctions.UserAPI.UpdateUser,
		},
		{
			"DeleteUser",
			http.MethodDelete,
			"/v1/users/:username",
			handleFunctions.UserAPI.DeleteUser,
		},
		{
			"LoginUser",
			http.MethodPost,
			"/v1/sessions",
			handleFunctions.UserAPI.LoginUser,
		},
		{
			"LogoutUser",
			http.MethodDelete,
			"/v1/sessions",
			handleFunctions.UserAPI.LogoutUser,
		},
	}
}
