package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slicelab/pizza-store-api/internal/domains/orders/domain"
	"github.com/slicelab/pizza-store-api/internal/domains/orders/ports"
)

func sampleOrder(t *testing.T, id string, createdAt time.Time) *domain.Order {
	t.Helper()
	order, err := domain.NewOrder(id,
		[]domain.OrderItem{{PizzaID: 1, Name: "Margherita", Size: "Medium", Toppings: []string{"Olives"}, Quantity: 1, UnitPrice: decimal.RequireFromString("10")}},
		domain.Customer{Name: "Ada", Extra: map[string]string{"note": "ring twice"}},
		domain.Totals{},
		createdAt,
	)
	require.NoError(t, err)
	return order
}

func TestRepository_SaveAndGetByID(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()
	order := sampleOrder(t, "order_1_abc", time.Now())

	saved, err := repo.Save(ctx, order)
	require.NoError(t, err)
	assert.Equal(t, order.ID, saved.ID)

	fetched, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, fetched.Status)
	assert.Equal(t, "ring twice", fetched.Customer.Extra["note"])
}

func TestRepository_GetByIDMissing(t *testing.T) {
	repo := NewRepository()

	_, err := repo.GetByID(context.Background(), "order_0_nope")
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestRepository_SaveIsolatesCaller(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()
	order := sampleOrder(t, "order_2_def", time.Now())

	_, err := repo.Save(ctx, order)
	require.NoError(t, err)

	// Mutations after save must not reach the stored snapshot.
	order.Items[0].Quantity = 99
	order.Customer.Extra["note"] = "changed"

	fetched, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, fetched.Items[0].Quantity)
	assert.Equal(t, "ring twice", fetched.Customer.Extra["note"])
}

func TestRepository_ListNewestFirst(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()
	base := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

	for i, id := range []string{"order_1_a", "order_2_b", "order_3_c"} {
		_, err := repo.Save(ctx, sampleOrder(t, id, base.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, err)
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "order_3_c", list[0].ID)
	assert.Equal(t, "order_1_a", list[2].ID)
}
