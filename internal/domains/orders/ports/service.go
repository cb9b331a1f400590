package ports

import (
	"context"

	"github.com/slicelab/pizza-store-api/internal/domains/orders/domain"
)

// Submission carries everything the order boundary needs from checkout:
// the cart snapshot, the customer fields, and the computed totals.
type Submission struct {
	Items    []domain.OrderItem
	Customer domain.Customer
	Totals   domain.Totals
}

// Service exposes the order use cases to adapters.
type Service interface {
	SubmitOrder(ctx context.Context, submission Submission) (*domain.Confirmation, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
}
