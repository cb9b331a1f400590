package domain

import "github.com/shopspring/decimal"

// Flat checkout rates. The delivery fee is waived for an empty cart.
var (
	TaxRate     = decimal.RequireFromString("0.08")
	DeliveryFee = decimal.RequireFromString("3.99")
)

// Summary is the checkout cost breakdown derived from the current cart
// contents. It is recomputed on every read; cart contents can change
// between reads.
type Summary struct {
	Subtotal    decimal.Decimal
	Tax         decimal.Decimal
	DeliveryFee decimal.Decimal
	Total       decimal.Decimal
	Count       int
}

// Summarize computes subtotal, 8% tax, delivery fee, and total.
func (c *Cart) Summarize() Summary {
	subtotal := c.Total()
	tax := subtotal.Mul(TaxRate)
	fee := decimal.Zero
	if subtotal.IsPositive() {
		fee = DeliveryFee
	}
	return Summary{
		Subtotal:    subtotal,
		Tax:         tax,
		DeliveryFee: fee,
		Total:       subtotal.Add(tax).Add(fee),
		Count:       c.Count(),
	}
}
