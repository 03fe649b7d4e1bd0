package tax

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Regime is a declarative per-jurisdiction calculator: a taxable-base rule
// plus an ordered list of deduction rules. It holds no mutable state, so a
// single instance is safe for concurrent Compute calls.
type Regime struct {
	Key            string
	Title          string
	Country        string
	EmploymentType string
	Currency       string

	// LocalCurrency/LocalRate report the conversion applied when the
	// regime's thresholds were translated from a local currency to EUR.
	LocalCurrency string
	LocalRate     decimal.Decimal

	Base  BaseRule
	Rules []DeductionRule
}

// Info returns the registry-facing description of the regime.
func (r Regime) Info() Info {
	return Info{
		Key:            r.Key,
		Title:          r.Title,
		Country:        r.Country,
		EmploymentType: r.EmploymentType,
		Currency:       r.Currency,
	}
}

// Validate checks the regime's bracket tables and rates so defective
// definitions are rejected at registration time rather than mid-request.
func (r Regime) Validate() error {
	if r.Key == "" {
		return fmt.Errorf("regime has no key")
	}
	if r.Base == nil {
		return fmt.Errorf("regime %s has no taxable-base rule", r.Key)
	}
	for _, rule := range r.Rules {
		p, ok := rule.(Progressive)
		if !ok {
			continue
		}
		if err := p.Table.Validate(); err != nil {
			return fmt.Errorf("%s table in regime %s: %w", p.Name, r.Key, err)
		}
	}
	return nil
}

// Compute runs the regime's deduction pipeline against a gross salary:
// gross-basis contributions first (the taxable base may depend on them),
// then the taxable base, then the remaining rules in order. Negative gross
// is rejected with InvalidInputError; any invariant violation afterwards is
// a regime defect reported via ErrComputation.
func (r Regime) Compute(gross decimal.Decimal) (Result, error) {
	if gross.IsNegative() {
		return Result{}, &InvalidInputError{Input: gross.String()}
	}

	p := &pipeline{gross: gross, contributions: decimal.Zero}
	items := make([]Deduction, 0, len(r.Rules))

	for _, rule := range r.Rules {
		if !rule.grossContribution() {
			continue
		}
		if d, ok := rule.apply(p); ok {
			items = append(items, d)
			p.contributions = p.contributions.Add(d.Amount)
		}
	}

	p.taxBase = r.Base.taxableBase(gross, p.contributions)

	for _, rule := range r.Rules {
		if rule.grossContribution() {
			continue
		}
		if d, ok := rule.apply(p); ok {
			items = append(items, d)
		}
	}

	total := decimal.Zero
	for _, d := range items {
		if d.Amount.IsNegative() {
			return Result{}, fmt.Errorf("%w: regime %s produced negative %s", ErrComputation, r.Key, d.Name)
		}
		total = total.Add(d.Amount)
	}
	net := gross.Sub(total)
	if net.IsNegative() {
		return Result{}, fmt.Errorf("%w: regime %s deductions %s exceed gross %s", ErrComputation, r.Key, total, gross)
	}

	return Result{
		Key:             r.Key,
		Country:         r.Country,
		EmploymentType:  r.EmploymentType,
		Currency:        r.Currency,
		GrossSalary:     gross,
		TaxBase:         p.taxBase,
		Deductions:      items,
		TotalDeductions: total,
		NetSalary:       net,
		LocalCurrency:   r.LocalCurrency,
		LocalRate:       r.LocalRate,
	}, nil
}
