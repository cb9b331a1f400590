package migrations

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Run applies the orders schema. Intended to replace adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&orderRecord{},
		&orderItemRecord{},
	)
}

// Order schema mirrors the orders Postgres adapter.
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

// Order line schema mirrors the orders Postgres adapter.
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
