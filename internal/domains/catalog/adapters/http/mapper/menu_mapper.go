package mapper

import (
	catalogdomain "github.com/slicelab/pizza-store-api/internal/domains/catalog/domain"
)

// Pizza is the transport shape of a catalog entry. Prices travel as plain
// JSON numbers because the storefront renders them directly.
type Pizza struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"basePrice"`
	Category    string  `json:"category"`
}

// Size is the transport shape of a pizza size option.
type Size struct {
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
	Inches     int     `json:"inches,omitempty"`
}

// Topping is the transport shape of an extra topping option.
type Topping struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Menu bundles the full catalog for a single GET response.
type Menu struct {
	Pizzas   []Pizza   `json:"pizzas"`
	Sizes    []Size    `json:"sizes"`
	Toppings []Topping `json:"toppings"`
}

// FromDomainMenu converts the catalog into its transport representation.
func FromDomainMenu(menu *catalogdomain.Menu) Menu {
	if menu == nil {
		return Menu{}
	}
	pizzas := make([]Pizza, 0, len(menu.Pizzas()))
	for _, p := range menu.Pizzas() {
		pizzas = append(pizzas, Pizza{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			BasePrice:   p.BasePrice.InexactFloat64(),
			Category:    p.Category,
		})
	}
	sizes := make([]Size, 0, len(menu.Sizes()))
	for _, s := range menu.Sizes() {
		sizes = append(sizes, Size{
			Name:       s.Name,
			Multiplier: s.Multiplier.InexactFloat64(),
			Inches:     s.Inches,
		})
	}
	toppings := make([]Topping, 0, len(menu.Toppings()))
	for _, t := range menu.Toppings() {
		toppings = append(toppings, Topping{
			Name:  t.Name,
			Price: t.Price.InexactFloat64(),
		})
	}
	return Menu{Pizzas: pizzas, Sizes: sizes, Toppings: toppings}
}
