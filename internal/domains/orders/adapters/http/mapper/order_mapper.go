package mapper

import (
	"time"

	ordersdomain "github.com/slicelab/pizza-store-api/internal/domains/orders/domain"
)

// Customer is the transport shape of the checkout form. Unrecognized
// storefront fields travel in Extra untouched.
type Customer struct {
	Name         string            `json:"name"`
	Phone        string            `json:"phone,omitempty"`
	Email        string            `json:"email,omitempty"`
	Address      string            `json:"address,omitempty"`
	City         string            `json:"city,omitempty"`
	Zip          string            `json:"zip,omitempty"`
	Instructions string            `json:"instructions,omitempty"`
	Extra        map[string]string `json:"extra,omitempty"`
}

// OrderItem is the transport shape of one order line.
type OrderItem struct {
	PizzaID   int64    `json:"pizzaId"`
	Name      string   `json:"name"`
	Size      string   `json:"size"`
	Toppings  []string `json:"toppings,omitempty"`
	Quantity  int      `json:"quantity"`
	UnitPrice string   `json:"unitPrice"`
}

// Totals carries the cost breakdown rounded to two decimals; monetary
// rounding happens only here, at the output boundary.
type Totals struct {
	Subtotal    string `json:"subtotal"`
	Tax         string `json:"tax"`
	DeliveryFee string `json:"deliveryFee"`
	Total       string `json:"total"`
}

// Order is the transport representation of a persisted order.
type Order struct {
	ID        string      `json:"id"`
	Items     []OrderItem `json:"items"`
	Customer  Customer    `json:"customer"`
	Totals    Totals      `json:"totals"`
	Status    string      `json:"status"`
	Timestamp string      `json:"timestamp"`
}

// Confirmation is the transport shape of a submission outcome.
type Confirmation struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId,omitempty"`
	Message string `json:"message"`
}

// ToDomainCustomer converts the checkout form into the domain record.
func ToDomainCustomer(c Customer) ordersdomain.Customer {
	return ordersdomain.Customer{
		Name:         c.Name,
		Phone:        c.Phone,
		Email:        c.Email,
		Address:      c.Address,
		City:         c.City,
		Zip:          c.Zip,
		Instructions: c.Instructions,
		Extra:        c.Extra,
	}
}

// FromDomainOrder converts a domain order to its transport representation.
func FromDomainOrder(order *ordersdomain.Order) Order {
	if order == nil {
		return Order{}
	}
	items := make([]OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItem{
			PizzaID:   item.PizzaID,
			Name:      item.Name,
			Size:      item.Size,
			Toppings:  item.Toppings,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.StringFixed(2),
		})
	}
	return Order{
		ID:    order.ID,
		Items: items,
		Customer: Customer{
			Name:         order.Customer.Name,
			Phone:        order.Customer.Phone,
			Email:        order.Customer.Email,
			Address:      order.Customer.Address,
			City:         order.Customer.City,
			Zip:          order.Customer.Zip,
			Instructions: order.Customer.Instructions,
			Extra:        order.Customer.Extra,
		},
		Totals: Totals{
			Subtotal:    order.Totals.Subtotal.StringFixed(2),
			Tax:         order.Totals.Tax.StringFixed(2),
			DeliveryFee: order.Totals.DeliveryFee.StringFixed(2),
			Total:       order.Totals.Total.StringFixed(2),
		},
		Status:    string(order.Status),
		Timestamp: order.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// FromDomainOrderList converts a list of domain orders.
func FromDomainOrderList(orders []*ordersdomain.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, order := range orders {
		out = append(out, FromDomainOrder(order))
	}
	return out
}

// FromDomainConfirmation converts a submission outcome.
func FromDomainConfirmation(conf *ordersdomain.Confirmation) Confirmation {
	if conf == nil {
		return Confirmation{}
	}
	return Confirmation{Success: conf.Success, OrderID: conf.OrderID, Message: conf.Message}
}
