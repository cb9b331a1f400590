package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem is one aggregated cart entry for a distinct
// (pizza, size, topping-set) configuration.
type LineItem struct {
	ID        string
	PizzaID   int64
	Name      string
	Size      string
	Toppings  []string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Key returns the normalized identity of the configuration. Topping order
// and duplicate mentions never affect identity.
func (li LineItem) Key() string {
	return itemKey(li.PizzaID, li.Size, li.Toppings)
}

func itemKey(pizzaID int64, size string, toppings []string) string {
	normalized := make([]string, 0, len(toppings))
	seen := make(map[string]struct{}, len(toppings))
	for _, t := range toppings {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		normalized = append(normalized, t)
	}
	sort.Strings(normalized)
	return fmt.Sprintf("%d|%s|%s", pizzaID, size, strings.Join(normalized, ","))
}

// Cart holds one shopper session's line items. It is owned by a single
// session and mutated only by sequential UI-triggered actions, so it does
// no locking of its own.
type Cart struct {
	items []LineItem
}

func NewCart() *Cart {
	return &Cart{}
}

// AddItem merges the configuration into an existing line item when the
// normalized identity matches, summing quantities and keeping the unit
// price captured at first add. Otherwise it appends a new line item with a
// fresh identifier. Non-positive quantities are ignored.
func (c *Cart) AddItem(pizzaID int64, name, size string, toppings []string, quantity int, unitPrice decimal.Decimal) (LineItem, bool) {
	if quantity <= 0 {
		return LineItem{}, false
	}
	key := itemKey(pizzaID, size, toppings)
	for i := range c.items {
		if c.items[i].Key() == key {
			c.items[i].Quantity += quantity
			return c.items[i], true
		}
	}
	item := LineItem{
		ID:        uuid.NewString(),
		PizzaID:   pizzaID,
		Name:      name,
		Size:      size,
		Toppings:  append([]string(nil), toppings...),
		Quantity:  quantity,
		UnitPrice: unitPrice,
	}
	c.items = append(c.items, item)
	return item, true
}

// SetQuantity replaces a line item's quantity. A quantity of zero or below
// removes the item. An unknown item ID is a no-op; UI state can race with
// rapid double-clicks and a stale identifier must not fail the session.
func (c *Cart) SetQuantity(itemID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(itemID)
		return
	}
	for i := range c.items {
		if c.items[i].ID == itemID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem deletes the line item if present, no-op otherwise.
func (c *Cart) RemoveItem(itemID string) {
	for i := range c.items {
		if c.items[i].ID == itemID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}

// Items returns the line items in insertion order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	for i, item := range c.items {
		out[i] = item
		out[i].Toppings = append([]string(nil), item.Toppings...)
	}
	return out
}

// Total sums unitPrice * quantity over all line items. Always derived from
// the current items, never cached.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// Count sums the quantities over all line items.
func (c *Cart) Count() int {
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// IsEmpty reports whether the cart has no line items.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Clone returns an independent copy of the cart.
func (c *Cart) Clone() *Cart {
	return &Cart{items: c.Items()}
}
