package ports

import (
	"context"
	"errors"

	"github.com/slicelab/pizza-store-api/internal/domains/orders/domain"
)

// ErrNotFound reports a lookup for an order identifier that does not exist.
// It is distinct from infrastructure failures, which surface as their own
// errors.
var ErrNotFound = errors.New("order not found")

// Repository persists order snapshots keyed by their identifier.
type Repository interface {
	Save(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
}
