package pizzaserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route binds an HTTP method and path pattern to a handler.
type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc gin.HandlerFunc
}

// Routes is the list of the server's registered routes.
type Routes []Route

// ApiHandleFunctions bundles the per-context API handlers for the router.
type ApiHandleFunctions struct {
	MenuAPI  MenuAPI
	CartAPI  CartAPI
	OrderAPI OrderAPI
}

// NewRouter returns a gin engine with all storefront routes registered.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine registers the routes on an existing engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = defaultHandleFunc
		}
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			router.POST(route.Pattern, route.HandlerFunc)
		case http.MethodPatch:
			router.PATCH(route.Pattern, route.HandlerFunc)
		case http.MethodDelete:
			router.DELETE(route.Pattern, route.HandlerFunc)
		}
	}
	return router
}

// defaultHandleFunc answers routes with no registered handler.
func defaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

func getRoutes(handleFunctions ApiHandleFunctions) Routes {
	return Routes{
		{
			"Healthz",
			http.MethodGet,
			"/healthz",
			func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) },
		},
		{
			"GetMenu",
			http.MethodGet,
			"/api/menu",
			handleFunctions.MenuAPI.GetMenu,
		},
		{
			"GetCart",
			http.MethodGet,
			"/api/cart",
			handleFunctions.CartAPI.GetCart,
		},
		{
			"ClearCart",
			http.MethodDelete,
			"/api/cart",
			handleFunctions.CartAPI.ClearCart,
		},
		{
			"AddCartItem",
			http.MethodPost,
			"/api/cart/items",
			handleFunctions.CartAPI.AddCartItem,
		},
		{
			"UpdateCartItem",
			http.MethodPatch,
			"/api/cart/items/:itemId",
			handleFunctions.CartAPI.UpdateCartItem,
		},
		{
			"DeleteCartItem",
			http.MethodDelete,
			"/api/cart/items/:itemId",
			handleFunctions.CartAPI.DeleteCartItem,
		},
		{
			"PlaceOrder",
			http.MethodPost,
			"/api/orders",
			handleFunctions.OrderAPI.PlaceOrder,
		},
		{
			"ListOrders",
			http.MethodGet,
			"/api/orders",
			handleFunctions.OrderAPI.ListOrders,
		},
		{
			"GetOrderById",
			http.MethodGet,
			"/api/orders/:orderId",
			handleFunctions.OrderAPI.GetOrderById,
		},
	}
}
