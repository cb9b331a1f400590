package ports

import (
	"context"

	"github.com/slicelab/pizza-store-api/internal/domains/orders/domain"
)

// WorkflowOrchestrator places an order either inline or through a durable
// workflow engine. Each placement is a single atomic unit of work; a
// half-written order must never be observable by a later lookup.
type WorkflowOrchestrator interface {
	PlaceOrder(ctx context.Context, submission Submission) (*domain.Confirmation, error)
}
