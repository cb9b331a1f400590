package orders

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	ordersdomain "github.com/slicelab/pizza-store-api/internal/domains/orders/domain"
	ordersports "github.com/slicelab/pizza-store-api/internal/domains/orders/ports"
)

const (
	// OrderPlacementWorkflowName is the public identifier for registering the workflow.
	OrderPlacementWorkflowName = "orders.workflows.Placement"
	// OrderPlacementTaskQueue is the queue consumed by the worker processing order workflows.
	OrderPlacementTaskQueue = "ORDER_PLACEMENT"
	// PlaceOrderActivityName identifies the persistence activity.
	PlaceOrderActivityName = "orders.activities.PlaceOrder"
)

// OrderPlacementWorkflowInput captures the payload required to place an order.
type OrderPlacementWorkflowInput struct {
	Submission ordersports.Submission
	TraceID    string
}

// OrderPlacementWorkflow runs the single persistence activity for a checkout
// submission. Retrying is deliberately left to the storefront; the activity
// runs at most once so a failure surfaces instead of producing duplicate
// orders.
func OrderPlacementWorkflow(ctx workflow.Context, input OrderPlacementWorkflowInput) (*ordersdomain.Confirmation, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("OrderPlacementWorkflow started", withTraceID(input.TraceID, "items", len(input.Submission.Items))...)

	options := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy:         &temporal.RetryPolicy{MaximumAttempts: 1},
	}
	ctx = workflow.WithActivityOptions(ctx, options)

	var confirmation ordersdomain.Confirmation
	if err := workflow.ExecuteActivity(ctx, PlaceOrderActivityName, input.Submission).Get(ctx, &confirmation); err != nil {
		logger.Error("OrderPlacementWorkflow failed", withTraceID(input.TraceID, "error", err)...)
		return nil, err
	}
	logger.Info("OrderPlacementWorkflow completed", withTraceID(input.TraceID, "orderId", confirmation.OrderID)...)
	return &confirmation, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
