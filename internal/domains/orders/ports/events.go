package ports

import (
	"context"

	"github.com/slicelab/pizza-store-api/internal/domains/orders/domain"
)

// EventPublisher announces accepted orders to downstream consumers.
// Publishing is best-effort; a broker outage must not fail the order.
type EventPublisher interface {
	OrderPlaced(ctx context.Context, order *domain.Order) error
}
