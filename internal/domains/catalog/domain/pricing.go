package domain

import "github.com/shopspring/decimal"

// UnitPrice computes the price of a single customized pizza:
// basePrice * size multiplier + the flat price of each matched topping.
//
// An unknown size name falls back to the menu's default size and unknown
// topping names contribute zero cost; the UI always offers a valid default,
// so a stale size or topping string must never block checkout. The result
// carries full precision; rounding to two decimals happens only at
// transport boundaries.
func (m *Menu) UnitPrice(basePrice decimal.Decimal, sizeName string, toppingNames []string) decimal.Decimal {
	size, ok := m.sizesByName[sizeName]
	if !ok {
		size = m.defaultSize
	}
	price := basePrice.Mul(size.Multiplier)
	for _, name := range toppingNames {
		if topping, ok := m.topsByName[name]; ok {
			price = price.Add(topping.Price)
		}
	}
	return price
}

// PriceFor resolves the pizza by ID and prices the requested configuration.
// The boolean reports whether the pizza exists in the catalog.
func (m *Menu) PriceFor(pizzaID int64, sizeName string, toppingNames []string) (decimal.Decimal, bool) {
	pizza, ok := m.pizzasByID[pizzaID]
	if !ok {
		return decimal.Zero, false
	}
	return m.UnitPrice(pizza.BasePrice, sizeName, toppingNames), true
}
