package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/slicelab/pizza-store-api/internal/domains/orders/domain"
	"github.com/slicelab/pizza-store-api/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists orders in PostgreSQL using GORM. Each Save writes the
// order row and its item rows in one transaction so a partial order is never
// visible to a concurrent lookup.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&orderRecord{}, &orderItemRecord{})
	}
	return repo
}

// orderRecord maps the order snapshot to a relational row.
type orderRecord struct {
	ID           string            `gorm:"primaryKey;column:id;size:64"`
	CustomerName string            `gorm:"column:customer_name"`
	Phone        string            `gorm:"column:phone"`
	Email        string            `gorm:"column:email"`
	Address      string            `gorm:"column:address"`
	City         string            `gorm:"column:city"`
	Zip          string            `gorm:"column:zip"`
	Instructions string            `gorm:"column:instructions"`
	Extra        map[string]string `gorm:"column:extra;serializer:json"`
	Subtotal     decimal.Decimal   `gorm:"column:subtotal;type:numeric(12,4)"`
	Tax          decimal.Decimal   `gorm:"column:tax;type:numeric(12,4)"`
	DeliveryFee  decimal.Decimal   `gorm:"column:delivery_fee;type:numeric(12,4)"`
	Total        decimal.Decimal   `gorm:"column:total;type:numeric(12,4)"`
	Status       string            `gorm:"column:status;type:varchar(32);index"`
	CreatedAt    time.Time         `gorm:"column:created_at;index"`
}

func (orderRecord) TableName() string { return "orders" }

type orderItemRecord struct {
	ID        int64           `gorm:"primaryKey;autoIncrement;column:id"`
	OrderID   string          `gorm:"column:order_id;size:64;index"`
	PizzaID   int64           `gorm:"column:pizza_id"`
	Name      string          `gorm:"column:name"`
	Size      string          `gorm:"column:size;type:varchar(32)"`
	Toppings  pq.StringArray  `gorm:"column:toppings;type:text[]"`
	Quantity  int             `gorm:"column:quantity"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price;type:numeric(12,4)"`
}

func (orderItemRecord) TableName() string { return "order_items" }

// Save inserts or replaces an order with its items atomically.
func (r *Repository) Save(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	record, items := toRecords(order)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&record).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", record.ID).Delete(&orderItemRecord{}).Error; err != nil {
			return err
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches an order snapshot by identifier.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	var items []orderItemRecord
	if err := r.db.WithContext(ctx).Where("order_id = ?", id).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return toDomain(record, items), nil
}

// List returns all orders, newest first.
func (r *Repository) List(ctx context.Context) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderRecord
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	var items []orderItemRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	itemsByOrder := make(map[string][]orderItemRecord, len(records))
	for _, item := range items {
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item)
	}
	orders := make([]*domain.Order, 0, len(records))
	for _, record := range records {
		orders = append(orders, toDomain(record, itemsByOrder[record.ID]))
	}
	return orders, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order repository not configured")
	}
	return nil
}

func toRecords(order *domain.Order) (orderRecord, []orderItemRecord) {
	record := orderRecord{
		ID:           order.ID,
		CustomerName: order.Customer.Name,
		Phone:        order.Customer.Phone,
		Email:        order.Customer.Email,
		Address:      order.Customer.Address,
		City:         order.Customer.City,
		Zip:          order.Customer.Zip,
		Instructions: order.Customer.Instructions,
		Extra:        order.Customer.Extra,
		Subtotal:     order.Totals.Subtotal,
		Tax:          order.Totals.Tax,
		DeliveryFee:  order.Totals.DeliveryFee,
		Total:        order.Totals.Total,
		Status:       string(order.Status),
		CreatedAt:    order.CreatedAt,
	}
	items := make([]orderItemRecord, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemRecord{
			OrderID:   order.ID,
			PizzaID:   item.PizzaID,
			Name:      item.Name,
			Size:      item.Size,
			Toppings:  pq.StringArray(item.Toppings),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return record, items
}

func toDomain(record orderRecord, items []orderItemRecord) *domain.Order {
	order := &domain.Order{
		ID: record.ID,
		Customer: domain.Customer{
			Name:         record.CustomerName,
			Phone:        record.Phone,
			Email:        record.Email,
			Address:      record.Address,
			City:         record.City,
			Zip:          record.Zip,
			Instructions: record.Instructions,
			Extra:        record.Extra,
		},
		Totals: domain.Totals{
			Subtotal:    record.Subtotal,
			Tax:         record.Tax,
			DeliveryFee: record.DeliveryFee,
			Total:       record.Total,
		},
		Status:    domain.Status(record.Status),
		CreatedAt: record.CreatedAt.UTC(),
	}
	order.Items = make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		order.Items = append(order.Items, domain.OrderItem{
			PizzaID:   item.PizzaID,
			Name:      item.Name,
			Size:      item.Size,
			Toppings:  append([]string(nil), item.Toppings...),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return order
}
