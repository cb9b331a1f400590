package mapper

import (
	"github.com/shopspring/decimal"

	cartdomain "github.com/slicelab/pizza-store-api/internal/domains/cart/domain"
	cartports "github.com/slicelab/pizza-store-api/internal/domains/cart/ports"
)

// LineItem is the transport shape of one cart line. Monetary amounts are
// rendered to two decimals only here, at the output boundary.
type LineItem struct {
	ID        string   `json:"id"`
	PizzaID   int64    `json:"pizzaId"`
	Name      string   `json:"name"`
	Size      string   `json:"size"`
	Toppings  []string `json:"toppings,omitempty"`
	Quantity  int      `json:"quantity"`
	UnitPrice string   `json:"unitPrice"`
	LineTotal string   `json:"lineTotal"`
}

// Summary carries the checkout cost breakdown for the current cart.
type Summary struct {
	Subtotal    string `json:"subtotal"`
	Tax         string `json:"tax"`
	DeliveryFee string `json:"deliveryFee"`
	Total       string `json:"total"`
	ItemCount   int    `json:"itemCount"`
}

// Cart is the full cart read model returned by the cart endpoints.
type Cart struct {
	Items   []LineItem `json:"items"`
	Summary Summary    `json:"summary"`
}

// FromDomainLineItem converts one cart line.
func FromDomainLineItem(item cartdomain.LineItem) LineItem {
	quantity := decimal.NewFromInt(int64(item.Quantity))
	return LineItem{
		ID:        item.ID,
		PizzaID:   item.PizzaID,
		Name:      item.Name,
		Size:      item.Size,
		Toppings:  item.Toppings,
		Quantity:  item.Quantity,
		UnitPrice: item.UnitPrice.StringFixed(2),
		LineTotal: item.UnitPrice.Mul(quantity).StringFixed(2),
	}
}

// FromView converts the cart read model into its transport representation.
func FromView(view cartports.View) Cart {
	items := make([]LineItem, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, FromDomainLineItem(item))
	}
	return Cart{
		Items: items,
		Summary: Summary{
			Subtotal:    view.Summary.Subtotal.StringFixed(2),
			Tax:         view.Summary.Tax.StringFixed(2),
			DeliveryFee: view.Summary.DeliveryFee.StringFixed(2),
			Total:       view.Summary.Total.StringFixed(2),
			ItemCount:   view.Summary.Count,
		},
	}
}
