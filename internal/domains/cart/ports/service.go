package ports

import (
	"context"

	"github.com/slicelab/pizza-store-api/internal/domains/cart/domain"
)

// AddItemInput carries one "add to cart" gesture.
type AddItemInput struct {
	SessionID string
	PizzaID   int64
	Size      string
	Toppings  []string
	Quantity  int
}

// View is the cart read model handed to the transport layer.
type View struct {
	Items   []domain.LineItem
	Summary domain.Summary
}

// Service exposes the cart use cases to adapters.
type Service interface {
	AddItem(ctx context.Context, input AddItemInput) (domain.LineItem, error)
	SetQuantity(ctx context.Context, sessionID, itemID string, quantity int) error
	RemoveItem(ctx context.Context, sessionID, itemID string) error
	Clear(ctx context.Context, sessionID string) error
	View(ctx context.Context, sessionID string) (View, error)
}
