// Package cart holds the shopping cart engine: an ordered collection of
// line items with merge-on-add semantics and derived totals.
package cart

import (
	"github.com/dhdiogoh/cyga-ecommerce/internal/domain/money"
)

// Shipping business constants: orders at or above the threshold ship
// free, everything else pays the flat fee.
const (
	FreeShippingThreshold money.Amount = 30000
	FlatShippingFee       money.Amount = 1990
)

// Line is one product entry in the cart. Name, price and image are
// snapshotted at add time; later catalog changes do not affect them.
type Line struct {
	ProductID string       `json:"product_id"`
	Name      string       `json:"name"`
	UnitPrice money.Amount `json:"unit_price"`
	Quantity  int64        `json:"quantity"`
	Image     string       `json:"image"`
}

// Cart is an ordered sequence of lines, at most one per product.
// It is not safe for concurrent use; each session owns its own cart.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// FromLines rebuilds a cart from persisted lines, normalizing whatever
// came out of storage: duplicate products are merged in first-seen
// order and non-positive quantities are dropped.
func FromLines(lines []Line) *Cart {
	c := New()
	for _, l := range lines {
		if l.Quantity <= 0 {
			continue
		}
		c.Add(l)
	}
	return c
}

// Add merges the line into the cart. If a line for the same product
// already exists its quantity is incremented, otherwise the line is
// appended. Quantities below one count as one.
func (c *Cart) Add(line Line) {
	if line.Quantity < 1 {
		line.Quantity = 1
	}
	for i := range c.lines {
		if c.lines[i].ProductID == line.ProductID {
			c.lines[i].Quantity += line.Quantity
			return
		}
	}
	c.lines = append(c.lines, line)
}

// Remove deletes the line for the product; no-op when absent.
func (c *Cart) Remove(productID string) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity overwrites the quantity of an existing line. A quantity
// of zero or less removes the line entirely.
func (c *Cart) SetQuantity(productID string, quantity int64) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// ItemCount is the sum of quantities over all lines.
func (c *Cart) ItemCount() int64 {
	var n int64
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Subtotal is the sum of unit price times quantity over all lines.
func (c *Cart) Subtotal() money.Amount {
	var total money.Amount
	for _, l := range c.lines {
		total += l.UnitPrice.Mul(l.Quantity)
	}
	return total
}

// Quote is the checkout math derived from the current lines.
type Quote struct {
	Subtotal money.Amount
	Shipping money.Amount
	Total    money.Amount
}

// FreeShipping reports whether the subtotal cleared the threshold.
func (q Quote) FreeShipping() bool {
	return q.Shipping == 0
}

// Quote computes subtotal, shipping and grand total for the cart.
func (c *Cart) Quote() Quote {
	sub := c.Subtotal()
	var fee money.Amount
	if sub < FreeShippingThreshold {
		fee = FlatShippingFee
	}
	return Quote{
		Subtotal: sub,
		Shipping: fee,
		Total:    sub + fee,
	}
}
