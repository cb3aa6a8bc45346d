package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Monetary amounts are carried as shopspring decimals and persisted as
// NUMERIC(15,2); everything entering the system is rounded to 2 fractional
// digits at the boundary so no sub-cent residue ever reaches the ledger.

func FromFloat(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid decimal value %q: %w", s, err)
	}
	return d.Round(2), nil
}

// Format renders an amount with exactly 2 fractional digits ("1000.00").
func Format(d decimal.Decimal) string {
	return d.StringFixed(2)
}
