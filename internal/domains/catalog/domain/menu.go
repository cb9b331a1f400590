package domain

import "github.com/shopspring/decimal"

// DefaultSizeName is the size applied when a request carries an unknown size.
const DefaultSizeName = "Medium"

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// DefaultMenu builds the standard storefront catalog.
func DefaultMenu() *Menu {
	pizzas := []Pizza{
		{ID: 1, Name: "Margherita", Description: "Classic tomato sauce, fresh mozzarella, and basil", BasePrice: dec("10"), Category: "Classic"},
		{ID: 2, Name: "Pepperoni", Description: "Tomato sauce, mozzarella, and pepperoni slices", BasePrice: dec("12"), Category: "Meat"},
		{ID: 3, Name: "Vegetarian", Description: "Tomato sauce, mozzarella, bell peppers, mushrooms, and olives", BasePrice: dec("11"), Category: "Vegetarian"},
		{ID: 4, Name: "Hawaiian", Description: "Tomato sauce, mozzarella, ham, and pineapple", BasePrice: dec("12"), Category: "Specialty"},
		{ID: 5, Name: "BBQ Chicken", Description: "BBQ sauce, mozzarella, grilled chicken, and red onions", BasePrice: dec("13"), Category: "Specialty"},
		{ID: 6, Name: "Four Cheese", Description: "Mozzarella, parmesan, gorgonzola, and ricotta", BasePrice: dec("13"), Category: "Classic"},
		{ID: 7, Name: "Meat Lovers", Description: "Pepperoni, sausage, bacon, and ham", BasePrice: dec("14"), Category: "Meat"},
		{ID: 8, Name: "Mediterranean", Description: "Feta cheese, olives, tomatoes, and spinach", BasePrice: dec("12"), Category: "Vegetarian"},
	}
	sizes := []Size{
		{Name: "Small", Multiplier: dec("0.8"), Inches: 10},
		{Name: "Medium", Multiplier: dec("1.0"), Inches: 12},
		{Name: "Large", Multiplier: dec("1.3"), Inches: 14},
		{Name: "Extra Large", Multiplier: dec("1.6"), Inches: 16},
	}
	toppings := []Topping{
		{Name: "Extra Cheese", Price: dec("1.5")},
		{Name: "Mushrooms", Price: dec("1.0")},
		{Name: "Olives", Price: dec("1.0")},
		{Name: "Bell Peppers", Price: dec("1.0")},
		{Name: "Onions", Price: dec("0.75")},
		{Name: "Pepperoni", Price: dec("1.5")},
		{Name: "Sausage", Price: dec("1.5")},
		{Name: "Bacon", Price: dec("2.0")},
		{Name: "Chicken", Price: dec("2.0")},
		{Name: "Jalapeños", Price: dec("0.75")},
		{Name: "Pineapple", Price: dec("1.0")},
		{Name: "Spinach", Price: dec("1.0")},
	}
	menu, err := NewMenu(pizzas, sizes, toppings, DefaultSizeName)
	if err != nil {
		// The seed data above is static; a failure here is a programming error.
		panic(err)
	}
	return menu
}
