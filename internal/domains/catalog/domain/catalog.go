package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyMenu          = errors.New("menu must contain at least one pizza")
	ErrNoSizes            = errors.New("menu must contain at least one size")
	ErrMissingDefaultSize = errors.New("default size is not part of the menu")
	ErrInvalidBasePrice   = errors.New("pizza base price must be greater than zero")
	ErrInvalidMultiplier  = errors.New("size multiplier must be greater than zero")
	ErrNegativeTopping    = errors.New("topping price must not be negative")
)

// Pizza is a single orderable catalog entry. Catalog data is loaded at
// process start and never mutated.
type Pizza struct {
	ID          int64
	Name        string
	Description string
	BasePrice   decimal.Decimal
	Category    string
}

// Size scales a pizza base price by its multiplier.
type Size struct {
	Name       string
	Multiplier decimal.Decimal
	Inches     int
}

// Topping adds a flat price on top of the sized base price.
type Topping struct {
	Name  string
	Price decimal.Decimal
}

// Menu is the immutable catalog of pizzas, sizes, and extra toppings.
type Menu struct {
	pizzas      []Pizza
	sizes       []Size
	toppings    []Topping
	pizzasByID  map[int64]Pizza
	sizesByName map[string]Size
	topsByName  map[string]Topping
	defaultSize Size
}

// NewMenu validates the catalog data and builds lookup indexes.
// The default size is the fallback used when pricing sees an unknown size name.
func NewMenu(pizzas []Pizza, sizes []Size, toppings []Topping, defaultSizeName string) (*Menu, error) {
	if len(pizzas) == 0 {
		return nil, ErrEmptyMenu
	}
	if len(sizes) == 0 {
		return nil, ErrNoSizes
	}
	m := &Menu{
		pizzas:      append([]Pizza(nil), pizzas...),
		sizes:       append([]Size(nil), sizes...),
		toppings:    append([]Topping(nil), toppings...),
		pizzasByID:  make(map[int64]Pizza, len(pizzas)),
		sizesByName: make(map[string]Size, len(sizes)),
		topsByName:  make(map[string]Topping, len(toppings)),
	}
	for _, p := range m.pizzas {
		if !p.BasePrice.IsPositive() {
			return nil, ErrInvalidBasePrice
		}
		m.pizzasByID[p.ID] = p
	}
	for _, s := range m.sizes {
		if !s.Multiplier.IsPositive() {
			return nil, ErrInvalidMultiplier
		}
		m.sizesByName[s.Name] = s
	}
	for _, t := range m.toppings {
		if t.Price.IsNegative() {
			return nil, ErrNegativeTopping
		}
		m.topsByName[t.Name] = t
	}
	def, ok := m.sizesByName[defaultSizeName]
	if !ok {
		return nil, ErrMissingDefaultSize
	}
	m.defaultSize = def
	return m, nil
}

// Pizzas returns the catalog pizzas in menu order.
func (m *Menu) Pizzas() []Pizza {
	return append([]Pizza(nil), m.pizzas...)
}

// Sizes returns the available sizes in menu order.
func (m *Menu) Sizes() []Size {
	return append([]Size(nil), m.sizes...)
}

// Toppings returns the available extra toppings in menu order.
func (m *Menu) Toppings() []Topping {
	return append([]Topping(nil), m.toppings...)
}

// PizzaByID looks up a pizza by its catalog identifier.
func (m *Menu) PizzaByID(id int64) (Pizza, bool) {
	p, ok := m.pizzasByID[id]
	return p, ok
}

// SizeByName looks up a size by its exact name.
func (m *Menu) SizeByName(name string) (Size, bool) {
	s, ok := m.sizesByName[name]
	return s, ok
}

// ToppingByName looks up a topping by its exact name.
func (m *Menu) ToppingByName(name string) (Topping, bool) {
	t, ok := m.topsByName[name]
	return t, ok
}

// DefaultSize returns the canonical fallback size.
func (m *Menu) DefaultSize() Size {
	return m.defaultSize
}
