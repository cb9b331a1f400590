package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitPrice_SizeMultiplierOnly(t *testing.T) {
	menu := DefaultMenu()

	tests := []struct {
		name string
		base string
		size string
		want string
	}{
		{name: "small", base: "10", size: "Small", want: "8"},
		{name: "medium", base: "10", size: "Medium", want: "10"},
		{name: "large", base: "10", size: "Large", want: "13"},
		{name: "extra large", base: "12", size: "Extra Large", want: "19.2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := menu.UnitPrice(dec(tt.base), tt.size, nil)
			assert.True(t, got.Equal(dec(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestUnitPrice_ToppingOrderIndependent(t *testing.T) {
	menu := DefaultMenu()

	a := menu.UnitPrice(dec("12"), "Large", []string{"Bacon", "Olives", "Extra Cheese"})
	b := menu.UnitPrice(dec("12"), "Large", []string{"Extra Cheese", "Bacon", "Olives"})
	c := menu.UnitPrice(dec("12"), "Large", []string{"Olives", "Extra Cheese", "Bacon"})

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(c))
	// 12 * 1.3 + 2.0 + 1.0 + 1.5
	assert.True(t, a.Equal(dec("20.1")), "got %s", a)
}

func TestUnitPrice_UnknownSizeFallsBackToDefault(t *testing.T) {
	menu := DefaultMenu()

	got := menu.UnitPrice(dec("10"), "Gigantic", nil)
	want := menu.UnitPrice(dec("10"), DefaultSizeName, nil)
	assert.True(t, got.Equal(want), "unknown size should price as %s", DefaultSizeName)
}

func TestUnitPrice_UnknownToppingContributesZero(t *testing.T) {
	menu := DefaultMenu()

	with := menu.UnitPrice(dec("10"), "Medium", []string{"Anchovy Dust", "Mushrooms"})
	base := menu.UnitPrice(dec("10"), "Medium", []string{"Mushrooms"})
	assert.True(t, with.Equal(base))
}

func TestUnitPrice_NoIntermediateRounding(t *testing.T) {
	menu := DefaultMenu()

	// 11 * 1.3 = 14.3 exactly; the decimal math must not drift.
	got := menu.UnitPrice(dec("11"), "Large", []string{"Onions"})
	assert.True(t, got.Equal(dec("15.05")), "got %s", got)
}

func TestPriceFor(t *testing.T) {
	menu := DefaultMenu()

	price, ok := menu.PriceFor(1, "Medium", nil)
	require.True(t, ok)
	assert.True(t, price.Equal(dec("10")))

	_, ok = menu.PriceFor(999, "Medium", nil)
	assert.False(t, ok)
}

func TestNewMenu_Validation(t *testing.T) {
	sizes := []Size{{Name: "Medium", Multiplier: dec("1.0"), Inches: 12}}
	pizzas := []Pizza{{ID: 1, Name: "Plain", BasePrice: dec("9"), Category: "Classic"}}

	t.Run("missing default size", func(t *testing.T) {
		_, err := NewMenu(pizzas, sizes, nil, "Large")
		require.ErrorIs(t, err, ErrMissingDefaultSize)
	})

	t.Run("non-positive base price", func(t *testing.T) {
		bad := []Pizza{{ID: 1, Name: "Free", BasePrice: decimal.Zero}}
		_, err := NewMenu(bad, sizes, nil, "Medium")
		require.ErrorIs(t, err, ErrInvalidBasePrice)
	})

	t.Run("negative topping price", func(t *testing.T) {
		bad := []Topping{{Name: "Discount", Price: dec("-1")}}
		_, err := NewMenu(pizzas, sizes, bad, "Medium")
		require.ErrorIs(t, err, ErrNegativeTopping)
	})

	t.Run("empty menu", func(t *testing.T) {
		_, err := NewMenu(nil, sizes, nil, "Medium")
		require.ErrorIs(t, err, ErrEmptyMenu)
	})
}

func TestDefaultMenu_Shape(t *testing.T) {
	menu := DefaultMenu()
	assert.Len(t, menu.Pizzas(), 8)
	assert.Len(t, menu.Sizes(), 4)
	assert.Len(t, menu.Toppings(), 12)
	assert.Equal(t, DefaultSizeName, menu.DefaultSize().Name)
}
