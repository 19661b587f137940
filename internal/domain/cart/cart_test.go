package cart

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dhdiogoh/cyga-ecommerce/internal/domain/money"
)

func line(id string, price money.Amount, qty int64) Line {
	return Line{
		ProductID: id,
		Name:      "Produto " + id,
		UnitPrice: price,
		Quantity:  qty,
	}
}

func TestAdd_NewLine(t *testing.T) {
	c := New()
	c.Add(line("1", 29990, 1))

	lines := c.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, "1", lines[0].ProductID)
	require.Equal(t, int64(1), lines[0].Quantity)
}

func TestAdd_MergesSameProduct(t *testing.T) {
	c := New()
	c.Add(line("1", 15000, 2))
	c.Add(line("1", 15000, 3))

	lines := c.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, int64(5), lines[0].Quantity)
}

func TestAdd_QuantityBelowOneDefaultsToOne(t *testing.T) {
	c := New()
	c.Add(line("1", 1000, 0))

	lines := c.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, int64(1), lines[0].Quantity)
}

func TestAdd_PreservesInsertionOrder(t *testing.T) {
	c := New()
	c.Add(line("3", 100, 1))
	c.Add(line("1", 200, 1))
	c.Add(line("2", 300, 1))
	c.Add(line("1", 200, 1))

	lines := c.Lines()
	require.Len(t, lines, 3)
	require.Equal(t, "3", lines[0].ProductID)
	require.Equal(t, "1", lines[1].ProductID)
	require.Equal(t, "2", lines[2].ProductID)
}

func TestRemove(t *testing.T) {
	c := New()
	c.Add(line("1", 100, 1))
	c.Add(line("2", 200, 1))

	c.Remove("1")

	lines := c.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, "2", lines[0].ProductID)

	// Removing an absent product is a no-op.
	c.Remove("999")
	require.Len(t, c.Lines(), 1)
}

func TestSetQuantity(t *testing.T) {
	c := New()
	c.Add(line("1", 100, 2))

	c.SetQuantity("1", 7)

	lines := c.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, int64(7), lines[0].Quantity)
}

func TestSetQuantity_ZeroRemovesLine(t *testing.T) {
	c := New()
	c.Add(line("1", 100, 2))
	c.Add(line("2", 200, 1))

	c.SetQuantity("1", 0)

	lines := c.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, "2", lines[0].ProductID)
}

func TestSetQuantity_NegativeRemovesLine(t *testing.T) {
	c := New()
	c.Add(line("1", 100, 2))

	c.SetQuantity("1", -5)

	require.Empty(t, c.Lines())
	require.Equal(t, int64(0), c.ItemCount())
}

func TestClear(t *testing.T) {
	c := New()
	c.Add(line("1", 100, 2))
	c.Add(line("2", 200, 3))

	c.Clear()

	require.Empty(t, c.Lines())
	require.Equal(t, int64(0), c.ItemCount())
	require.Equal(t, money.Amount(0), c.Subtotal())
}

func TestDerivedTotals(t *testing.T) {
	c := New()
	c.Add(line("1", 29990, 1))
	c.Add(line("2", 18990, 2))

	require.Equal(t, int64(3), c.ItemCount())
	// 299,90 + 2 * 189,90 = 679,70
	require.Equal(t, money.Amount(67970), c.Subtotal())
}

func TestInvariants_RandomOperationSequence(t *testing.T) {
	c := New()
	c.Add(line("1", 100, 2))
	c.Add(line("2", 200, 1))
	c.Add(line("1", 100, 1))
	c.SetQuantity("2", 4)
	c.Add(line("3", 300, 2))
	c.Remove("1")
	c.Add(line("2", 200, 1))
	c.SetQuantity("3", 0)

	seen := map[string]bool{}
	var count int64
	var sub money.Amount
	for _, l := range c.Lines() {
		require.False(t, seen[l.ProductID], "duplicate line for product %s", l.ProductID)
		seen[l.ProductID] = true
		require.GreaterOrEqual(t, l.Quantity, int64(1))
		count += l.Quantity
		sub += l.UnitPrice.Mul(l.Quantity)
	}
	require.Equal(t, count, c.ItemCount())
	require.Equal(t, sub, c.Subtotal())
}

func TestFromLines_NormalizesStoredData(t *testing.T) {
	c := FromLines([]Line{
		{ProductID: "1", UnitPrice: 100, Quantity: 2},
		{ProductID: "2", UnitPrice: 200, Quantity: 0},
		{ProductID: "1", UnitPrice: 100, Quantity: 3},
		{ProductID: "3", UnitPrice: 300, Quantity: -1},
	})

	lines := c.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, "1", lines[0].ProductID)
	require.Equal(t, int64(5), lines[0].Quantity)
}

func TestQuote_ShippingBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		subtotal money.Amount
		shipping money.Amount
	}{
		{
			name:     "Just below threshold",
			subtotal: 29999,
			shipping: 1990,
		},
		{
			name:     "Exactly at threshold",
			subtotal: 30000,
			shipping: 0,
		},
		{
			name:     "Just above threshold",
			subtotal: 30001,
			shipping: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			c.Add(line("1", tt.subtotal, 1))

			q := c.Quote()
			require.Equal(t, tt.subtotal, q.Subtotal)
			require.Equal(t, tt.shipping, q.Shipping)
			require.Equal(t, tt.subtotal+tt.shipping, q.Total)
		})
	}
}

func TestQuote_EndToEndScenario(t *testing.T) {
	// Add id:1 qty 2 at R$ 150,00, then id:1 qty 1 again: a single
	// line with qty 3, subtotal R$ 450,00, free shipping.
	price, err := money.ParseBRL("R$ 150,00")
	require.NoError(t, err)

	c := New()
	c.Add(line("1", price, 2))
	c.Add(line("1", price, 1))

	lines := c.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, int64(3), lines[0].Quantity)
	require.Equal(t, "R$ 450,00", c.Subtotal().FormatBRL())

	q := c.Quote()
	require.True(t, q.FreeShipping())
	require.Equal(t, "R$ 450,00", q.Total.FormatBRL())
}
