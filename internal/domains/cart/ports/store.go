package ports

import (
	"context"

	"github.com/slicelab/pizza-store-api/internal/domains/cart/domain"
)

// Store keeps one cart per shopper session. Implementations return an empty
// cart for sessions that have none yet; a missing session is never an error.
type Store interface {
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)
	Save(ctx context.Context, sessionID string, cart *domain.Cart) error
	Delete(ctx context.Context, sessionID string) error
}
