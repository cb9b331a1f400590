//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/slicelab/pizza-store-api/internal/domains/orders/domain"
	"github.com/slicelab/pizza-store-api/internal/domains/orders/ports"
	"github.com/slicelab/pizza-store-api/internal/platform/migrations"
)

func setupOrdersPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("pizzastore_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func integrationOrder(t *testing.T, id string) *domain.Order {
	t.Helper()
	order, err := domain.NewOrder(id,
		[]domain.OrderItem{
			{PizzaID: 2, Name: "Pepperoni", Size: "Large", Toppings: []string{"Bacon", "Olives"}, Quantity: 2, UnitPrice: decimal.RequireFromString("18.6")},
			{PizzaID: 1, Name: "Margherita", Size: "Medium", Quantity: 1, UnitPrice: decimal.RequireFromString("10")},
		},
		domain.Customer{Name: "Ada", Address: "1 Loop Rd", Extra: map[string]string{"gate_code": "1234"}},
		domain.Totals{
			Subtotal:    decimal.RequireFromString("47.2"),
			Tax:         decimal.RequireFromString("3.776"),
			DeliveryFee: decimal.RequireFromString("3.99"),
			Total:       decimal.RequireFromString("54.966"),
		},
		time.Now(),
	)
	require.NoError(t, err)
	return order
}

func TestRepository_SaveAndGetByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	order := integrationOrder(t, "order_1693000000000_ab12cd34e")
	saved, err := repo.Save(ctx, order)
	require.NoError(t, err)
	assert.Equal(t, order.ID, saved.ID)

	fetched, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Items, 2)
	assert.Equal(t, []string{"Bacon", "Olives"}, fetched.Items[0].Toppings)
	assert.True(t, fetched.Items[0].UnitPrice.Equal(decimal.RequireFromString("18.6")))
	assert.Equal(t, "1234", fetched.Customer.Extra["gate_code"])
	assert.Equal(t, domain.StatusPending, fetched.Status)
}

func TestRepository_GetByIDMissing(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	_, err := repo.GetByID(context.Background(), "order_0_missing00")
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestRepository_List(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	for _, id := range []string{"order_1_aaaaaaaaa", "order_2_bbbbbbbbb", "order_3_ccccccccc"} {
		_, err := repo.Save(ctx, integrationOrder(t, id))
		require.NoError(t, err)
	}

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 3)
	for _, order := range orders {
		assert.Len(t, order.Items, 2)
	}
}
