package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Status enumerates order progression. This service only ever writes the
// initial state; downstream fulfilment owns later transitions.
type Status string

const StatusPending Status = "pending"

var (
	ErrMissingID       = errors.New("order id must not be empty")
	ErrEmptyOrder      = errors.New("order must contain at least one item")
	ErrInvalidQuantity = errors.New("order item quantity must be greater than zero")
)

// OrderItem is the immutable snapshot of one cart line item at checkout.
type OrderItem struct {
	PizzaID   int64
	Name      string
	Size      string
	Toppings  []string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Customer holds the checkout form fields. Extra carries any additional
// fields the storefront passes through without interpretation here.
type Customer struct {
	Name         string
	Phone        string
	Email        string
	Address      string
	City         string
	Zip          string
	Instructions string
	Extra        map[string]string
}

// Totals is the cost breakdown frozen onto the order at submission.
type Totals struct {
	Subtotal    decimal.Decimal
	Tax         decimal.Decimal
	DeliveryFee decimal.Decimal
	Total       decimal.Decimal
}

// Order is the persisted snapshot of a completed checkout. It is created
// exactly once per successful submission and immutable afterwards.
type Order struct {
	ID        string
	Items     []OrderItem
	Customer  Customer
	Totals    Totals
	Status    Status
	CreatedAt time.Time
}

// Confirmation is the submission outcome returned to the storefront.
type Confirmation struct {
	Success bool
	OrderID string
	Message string
}

// NewOrder validates and constructs an order aggregate.
func NewOrder(id string, items []OrderItem, customer Customer, totals Totals, createdAt time.Time) (*Order, error) {
	order := &Order{
		ID:        id,
		Items:     append([]OrderItem(nil), items...),
		Customer:  customer,
		Totals:    totals,
		Status:    StatusPending,
		CreatedAt: createdAt.UTC(),
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	return order, nil
}

// Validate enforces invariants on the aggregate.
func (o *Order) Validate() error {
	if o.ID == "" {
		return ErrMissingID
	}
	if len(o.Items) == 0 {
		return ErrEmptyOrder
	}
	for _, item := range o.Items {
		if item.Quantity <= 0 {
			return ErrInvalidQuantity
		}
	}
	return nil
}
