package pizzaserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	cartdomain "github.com/slicelab/pizza-store-api/internal/domains/cart/domain"
	cartports "github.com/slicelab/pizza-store-api/internal/domains/cart/ports"
	ordersmapper "github.com/slicelab/pizza-store-api/internal/domains/orders/adapters/http/mapper"
	ordersdomain "github.com/slicelab/pizza-store-api/internal/domains/orders/domain"
	ordersports "github.com/slicelab/pizza-store-api/internal/domains/orders/ports"
)

// OrderAPI wires HTTP transport with checkout: it snapshots the session cart
// and hands the submission to the orders bounded context.
type OrderAPI struct {
	cart      cartports.Service
	service   ordersports.Service
	workflows ordersports.WorkflowOrchestrator
}

// NewOrderAPI creates an OrderAPI backed by the provided services.
func NewOrderAPI(cart cartports.Service, service ordersports.Service, workflows ordersports.WorkflowOrchestrator) OrderAPI {
	return OrderAPI{cart: cart, service: service, workflows: workflows}
}

// Post /api/orders
// Places an order from the session cart and the checkout form
func (api *OrderAPI) PlaceOrder(c *gin.Context) {
	var payload ordersmapper.Customer
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	session := sessionID(c)
	view, err := api.cart.View(c.Request.Context(), session)
	if err != nil {
		respondCartServiceError(c, err)
		return
	}
	if len(view.Items) == 0 {
		respondError(c, http.StatusBadRequest, errors.New("cart is empty"))
		return
	}
	submission := ordersports.Submission{
		Items:    toOrderItems(view.Items),
		Customer: ordersmapper.ToDomainCustomer(payload),
		Totals: ordersdomain.Totals{
			Subtotal:    view.Summary.Subtotal,
			Tax:         view.Summary.Tax,
			DeliveryFee: view.Summary.DeliveryFee,
			Total:       view.Summary.Total,
		},
	}
	confirmation, err := api.placeOrder(c.Request.Context(), submission)
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	// The cart is consumed only once the order is durably persisted.
	if err := api.cart.Clear(c.Request.Context(), session); err != nil {
		respondCartServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ordersmapper.FromDomainConfirmation(confirmation))
}

func (api *OrderAPI) placeOrder(ctx context.Context, submission ordersports.Submission) (*ordersdomain.Confirmation, error) {
	if api.workflows != nil {
		return api.workflows.PlaceOrder(ctx, submission)
	}
	return api.service.SubmitOrder(ctx, submission)
}

// Get /api/orders
// Lists all placed orders, newest first
func (api *OrderAPI) ListOrders(c *gin.Context) {
	orders, err := api.service.ListOrders(c.Request.Context())
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordersmapper.FromDomainOrderList(orders))
}

// Get /api/orders/:orderId
// Finds an order by its identifier
func (api *OrderAPI) GetOrderById(c *gin.Context) {
	order, err := api.service.GetOrder(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordersmapper.FromDomainOrder(order))
}

func toOrderItems(items []cartdomain.LineItem) []ordersdomain.OrderItem {
	out := make([]ordersdomain.OrderItem, 0, len(items))
	for _, item := range items {
		out = append(out, ordersdomain.OrderItem{
			PizzaID:   item.PizzaID,
			Name:      item.Name,
			Size:      item.Size,
			Toppings:  item.Toppings,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return out
}
