package application

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slicelab/pizza-store-api/internal/domains/orders/domain"
	"github.com/slicelab/pizza-store-api/internal/domains/orders/ports"
)

type fakeOrderRepo struct {
	orders  map[string]*domain.Order
	saveErr error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*domain.Order{}}
}

func (f *fakeOrderRepo) Save(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	clone := *order
	f.orders[order.ID] = &clone
	return &clone, nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id string) (*domain.Order, error) {
	if o, ok := f.orders[id]; ok {
		clone := *o
		return &clone, nil
	}
	return nil, ports.ErrNotFound
}

func (f *fakeOrderRepo) List(_ context.Context) ([]*domain.Order, error) {
	var list []*domain.Order
	for _, o := range f.orders {
		clone := *o
		list = append(list, &clone)
	}
	return list, nil
}

func sampleSubmission() ports.Submission {
	price := decimal.RequireFromString("10")
	return ports.Submission{
		Items: []domain.OrderItem{
			{PizzaID: 1, Name: "Margherita", Size: "Medium", Quantity: 2, UnitPrice: price},
		},
		Customer: domain.Customer{
			Name:    "Ada",
			Phone:   "555-0100",
			Address: "1 Loop Rd",
			Extra:   map[string]string{"gate_code": "1234"},
		},
		Totals: domain.Totals{
			Subtotal:    decimal.RequireFromString("20"),
			Tax:         decimal.RequireFromString("1.6"),
			DeliveryFee: decimal.RequireFromString("3.99"),
			Total:       decimal.RequireFromString("25.59"),
		},
	}
}

func TestSubmitOrder_StampsIdentityStatusAndTime(t *testing.T) {
	repo := newFakeOrderRepo()
	fixed := time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC)
	svc := NewService(repo, WithClock(func() time.Time { return fixed }))

	conf, err := svc.SubmitOrder(context.Background(), sampleSubmission())
	require.NoError(t, err)
	require.True(t, conf.Success)
	assert.True(t, strings.HasPrefix(conf.OrderID, "order_"), "got %s", conf.OrderID)
	assert.Equal(t, "Order placed successfully!", conf.Message)

	saved, err := svc.GetOrder(context.Background(), conf.OrderID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, saved.Status)
	assert.Equal(t, fixed, saved.CreatedAt)
	assert.Equal(t, "1234", saved.Customer.Extra["gate_code"])
}

func TestSubmitOrder_EmptyCartRejected(t *testing.T) {
	svc := NewService(newFakeOrderRepo())

	submission := sampleSubmission()
	submission.Items = nil
	_, err := svc.SubmitOrder(context.Background(), submission)
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrEmptyOrder)
}

func TestSubmitOrder_PersistenceFailurePropagates(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.saveErr = errors.New("disk full")
	svc := NewService(repo)

	conf, err := svc.SubmitOrder(context.Background(), sampleSubmission())
	require.Error(t, err)
	assert.Nil(t, conf, "no false success on persistence failure")
	assert.Contains(t, err.Error(), "disk full")
}

func TestSubmitOrder_IdentifiersAreUnique(t *testing.T) {
	svc := NewService(newFakeOrderRepo())

	seen := make(map[string]struct{}, 1000)
	for range 1000 {
		conf, err := svc.SubmitOrder(context.Background(), sampleSubmission())
		require.NoError(t, err)
		_, dup := seen[conf.OrderID]
		require.False(t, dup, "duplicate order id %s", conf.OrderID)
		seen[conf.OrderID] = struct{}{}
	}
}

func TestGetOrder_MissingIsNotFound(t *testing.T) {
	svc := NewService(newFakeOrderRepo())

	_, err := svc.GetOrder(context.Background(), "order_0_missing")
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestListOrders(t *testing.T) {
	svc := NewService(newFakeOrderRepo())

	for range 3 {
		_, err := svc.SubmitOrder(context.Background(), sampleSubmission())
		require.NoError(t, err)
	}
	orders, err := svc.ListOrders(context.Background())
	require.NoError(t, err)
	assert.Len(t, orders, 3)
}

type recordingPublisher struct {
	placed []string
	err    error
}

func (p *recordingPublisher) OrderPlaced(_ context.Context, order *domain.Order) error {
	p.placed = append(p.placed, order.ID)
	return p.err
}

func TestSubmitOrder_PublishesEvent(t *testing.T) {
	publisher := &recordingPublisher{}
	svc := NewService(newFakeOrderRepo(), WithEventPublisher(publisher))

	conf, err := svc.SubmitOrder(context.Background(), sampleSubmission())
	require.NoError(t, err)
	require.Len(t, publisher.placed, 1)
	assert.Equal(t, conf.OrderID, publisher.placed[0])
}

func TestSubmitOrder_PublishFailureDoesNotFailOrder(t *testing.T) {
	publisher := &recordingPublisher{err: errors.New("broker down")}
	svc := NewService(newFakeOrderRepo(), WithEventPublisher(publisher))

	conf, err := svc.SubmitOrder(context.Background(), sampleSubmission())
	require.NoError(t, err)
	assert.True(t, conf.Success)
}
