// Package pricing computes the authoritative contract price of quotation lines.
//
// Inputs are expected to be validated by the caller: base price, width and
// height strictly positive, quantity at least 1.
package pricing

import (
	"reliant_crm/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// PriceLine returns basePrice * width * height * quantity. No rounding is
// applied; rounding is a presentation concern.
func PriceLine(basePrice decimal.Decimal, width, height float64, quantity int) entities.QuotedPrice {
	p := basePrice.
		Mul(decimal.NewFromFloat(width)).
		Mul(decimal.NewFromFloat(height)).
		Mul(decimal.NewFromInt(int64(quantity)))
	return entities.NewQuotedPrice(p)
}

// PriceQuotation sums the prices of lines. An empty slice totals zero.
func PriceQuotation(lines []entities.PricedLine) entities.QuotedPrice {
	total := entities.NewQuotedPrice(decimal.Zero)
	for _, l := range lines {
		total = total.Add(l.Price)
	}
	return total
}
