package orders

import (
	"context"
	"errors"

	ordersdomain "github.com/slicelab/pizza-store-api/internal/domains/orders/domain"
	ordersports "github.com/slicelab/pizza-store-api/internal/domains/orders/ports"
)

// Activities exposes the orders service operations to Temporal workers.
type Activities struct {
	service ordersports.Service
}

func NewActivities(service ordersports.Service) *Activities {
	return &Activities{service: service}
}

// PlaceOrder persists a checkout submission through the orders service.
func (a *Activities) PlaceOrder(ctx context.Context, submission ordersports.Submission) (*ordersdomain.Confirmation, error) {
	if a == nil || a.service == nil {
		return nil, errors.New("order activities not configured")
	}
	return a.service.SubmitOrder(ctx, submission)
}
