package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCalculateExample(t *testing.T) {
	quote := Calculate([]Line{
		{UnitPrice: d("100.00"), Quantity: 2},
		{UnitPrice: d("50.00"), Quantity: 1},
	})

	assert.True(t, quote.Subtotal.Equal(d("250.00")), "subtotal = %s", quote.Subtotal)
	assert.True(t, quote.Shipping.Equal(d("15.00")), "shipping = %s", quote.Shipping)
	assert.True(t, quote.Tax.Equal(d("20.00")), "tax = %s", quote.Tax)
	assert.True(t, quote.Total.Equal(d("285.00")), "total = %s", quote.Total)
}

func TestCalculateBreakdownInvariant(t *testing.T) {
	cases := []struct {
		name  string
		lines []Line
	}{
		{"empty cart", nil},
		{"single unit", []Line{{UnitPrice: d("299.00"), Quantity: 1}}},
		{"large quantity", []Line{{UnitPrice: d("0.99"), Quantity: 137}}},
		{"awkward cents", []Line{
			{UnitPrice: d("10.01"), Quantity: 3},
			{UnitPrice: d("7.77"), Quantity: 2},
		}},
		{"free item", []Line{{UnitPrice: d("0.00"), Quantity: 5}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			quote := Calculate(tc.lines)

			assert.True(t, quote.Shipping.Equal(d("15.00")), "shipping is always flat")
			assert.True(t, quote.Tax.Equal(quote.Subtotal.Mul(TaxRate)), "tax is 8%% of subtotal")
			assert.True(t, quote.Total.Equal(quote.Subtotal.Add(quote.Shipping).Add(quote.Tax)),
				"total = subtotal + shipping + tax")
		})
	}
}

func TestCalculateNoIntermediateRounding(t *testing.T) {
	// 10.01 × 0.08 = 0.8008; the exact value must be carried, with
	// rounding deferred to formatting.
	quote := Calculate([]Line{{UnitPrice: d("10.01"), Quantity: 1}})

	assert.True(t, quote.Tax.Equal(d("0.8008")), "tax = %s", quote.Tax)
	assert.Equal(t, "0.80", quote.Tax.StringFixed(2))
	assert.Equal(t, "25.81", quote.Total.StringFixed(2))
}
