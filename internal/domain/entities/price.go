package entities

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// QuotedPrice is the deterministic contract price of a quotation line or total,
// computed from catalog base prices. It is never rounded before presentation.
type QuotedPrice struct {
	amount decimal.Decimal
}

// EstimatedPrice is a statistical estimate produced by the price model. It is
// always rounded to 2 decimal places and must not be used as a quote.
type EstimatedPrice struct {
	amount decimal.Decimal
}

func NewQuotedPrice(d decimal.Decimal) QuotedPrice { return QuotedPrice{amount: d} }

// ParseQuotedPrice reads a price persisted with QuotedPrice.String.
func ParseQuotedPrice(s string) (QuotedPrice, error) {
	if s == "" {
		return QuotedPrice{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return QuotedPrice{}, err
	}
	return QuotedPrice{amount: d}, nil
}

func (p QuotedPrice) Decimal() decimal.Decimal { return p.amount }
func (p QuotedPrice) Add(o QuotedPrice) QuotedPrice {
	return QuotedPrice{amount: p.amount.Add(o.amount)}
}
func (p QuotedPrice) Equal(o QuotedPrice) bool { return p.amount.Equal(o.amount) }
func (p QuotedPrice) IsZero() bool             { return p.amount.IsZero() }
func (p QuotedPrice) Float64() float64         { return p.amount.InexactFloat64() }
func (p QuotedPrice) String() string           { return p.amount.String() }

func (p QuotedPrice) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.amount.InexactFloat64())
}

func (p *QuotedPrice) UnmarshalJSON(b []byte) error {
	return p.amount.UnmarshalJSON(b)
}

func (p QuotedPrice) Value() (driver.Value, error) { return p.amount.Value() }
func (p *QuotedPrice) Scan(v interface{}) error    { return p.amount.Scan(v) }

// NewEstimatedPrice rounds a raw model output to currency precision.
func NewEstimatedPrice(raw float64) EstimatedPrice {
	return EstimatedPrice{amount: decimal.NewFromFloat(raw).Round(2)}
}

func (p EstimatedPrice) Decimal() decimal.Decimal { return p.amount }
func (p EstimatedPrice) Float64() float64         { return p.amount.InexactFloat64() }
func (p EstimatedPrice) String() string           { return p.amount.StringFixed(2) }

func (p EstimatedPrice) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.amount.InexactFloat64())
}
