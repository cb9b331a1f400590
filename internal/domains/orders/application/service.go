package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/slicelab/pizza-store-api/internal/domains/orders/domain"
	"github.com/slicelab/pizza-store-api/internal/domains/orders/ports"
)

const confirmationMessage = "Order placed successfully!"

// Service orchestrates order submission and lookup.
type Service struct {
	repo   ports.Repository
	events ports.EventPublisher
	logger *slog.Logger
	now    func() time.Time
}

type Option func(*Service)

// WithEventPublisher announces accepted orders after persistence succeeds.
func WithEventPublisher(events ports.EventPublisher) Option {
	return func(s *Service) { s.events = events }
}

// WithLogger attaches a logger for best-effort event publish failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithClock overrides the time source, used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo ports.Repository, opts ...Option) *Service {
	s := &Service{repo: repo, now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// SubmitOrder assigns an identifier, stamps creation time and the initial
// status, and persists the order. A persistence failure propagates to the
// caller; it is never swallowed and never retried here.
func (s *Service) SubmitOrder(ctx context.Context, submission ports.Submission) (*domain.Confirmation, error) {
	created := s.now().UTC()
	order, err := domain.NewOrder(newOrderID(created), submission.Items, submission.Customer, submission.Totals, created)
	if err != nil {
		return nil, mapError(err)
	}
	saved, err := s.repo.Save(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}
	s.publishPlaced(ctx, saved)
	return &domain.Confirmation{Success: true, OrderID: saved.ID, Message: confirmationMessage}, nil
}

// GetOrder is a pure lookup; ports.ErrNotFound passes through unchanged so
// callers can distinguish a missing order from an infrastructure failure.
func (s *Service) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.repo.List(ctx)
}

func (s *Service) publishPlaced(ctx context.Context, order *domain.Order) {
	if s.events == nil {
		return
	}
	if err := s.events.OrderPlaced(ctx, order); err != nil && s.logger != nil {
		s.logger.Warn("failed to publish order event",
			slog.String("order.id", order.ID), slog.String("error", err.Error()))
	}
}

// newOrderID composes a millisecond timestamp with a random component.
// Collisions are negligible at storefront order volume.
func newOrderID(now time.Time) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("order_%d_%s", now.UnixMilli(), random)
}

var _ ports.Service = (*Service)(nil)
