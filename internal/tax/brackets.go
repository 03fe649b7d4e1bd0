package tax

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Bracket is one marginal-rate slice of a progressive tax table. The slice
// covers [previous bound, UpTo); the final bracket sets Top instead of UpTo
// and has no upper bound.
type Bracket struct {
	UpTo decimal.Decimal `json:"up_to"`
	Rate decimal.Decimal `json:"rate"`
	Top  bool            `json:"top,omitempty"`
}

// BracketTable is an ordered progressive tax table covering 0 to infinity
// with no gaps.
type BracketTable []Bracket

var one = decimal.NewFromInt(1)

// Validate checks the table invariants: at least one bracket, bounds
// strictly increasing, rates in [0,1), and exactly the last bracket open.
func (t BracketTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("bracket table is empty")
	}
	prev := decimal.Zero
	for i, b := range t {
		if b.Rate.IsNegative() || b.Rate.GreaterThanOrEqual(one) {
			return fmt.Errorf("bracket %d: rate %s outside [0,1)", i, b.Rate)
		}
		if b.Top {
			if i != len(t)-1 {
				return fmt.Errorf("bracket %d: only the last bracket may be unbounded", i)
			}
			continue
		}
		if !b.UpTo.GreaterThan(prev) {
			return fmt.Errorf("bracket %d: bound %s not greater than previous bound %s", i, b.UpTo, prev)
		}
		prev = b.UpTo
	}
	if !t[len(t)-1].Top {
		return fmt.Errorf("last bracket must be unbounded")
	}
	return nil
}

// Apply taxes amount marginally across the table and returns the tax owed
// together with the effective rate. Each bracket's rate applies only to the
// slice of amount inside the bracket's half-open interval, so an amount
// exactly at a bound is taxed entirely in the lower bracket.
func (t BracketTable) Apply(amount decimal.Decimal) (tax, effectiveRate decimal.Decimal) {
	if amount.Sign() <= 0 {
		return decimal.Zero, decimal.Zero
	}
	tax = decimal.Zero
	lower := decimal.Zero
	for _, b := range t {
		upper := amount
		if !b.Top && b.UpTo.LessThan(amount) {
			upper = b.UpTo
		}
		if upper.GreaterThan(lower) {
			tax = tax.Add(upper.Sub(lower).Mul(b.Rate))
		}
		if b.Top || amount.LessThanOrEqual(b.UpTo) {
			break
		}
		lower = b.UpTo
	}
	return tax, tax.Div(amount)
}

// DividedBy returns a copy of the table with every bound divided by rate.
// Used to convert tables defined in a local currency into EUR.
func (t BracketTable) DividedBy(rate decimal.Decimal) BracketTable {
	out := make(BracketTable, len(t))
	for i, b := range t {
		out[i] = b
		if !b.Top {
			out[i].UpTo = b.UpTo.Div(rate)
		}
	}
	return out
}
