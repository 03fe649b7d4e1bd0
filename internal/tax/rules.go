package tax

import "github.com/shopspring/decimal"

// Basis identifies which amount a deduction rule is computed on.
type Basis int

const (
	// BasisGross applies the rule to the gross salary.
	BasisGross Basis = iota
	// BasisTaxBase applies the rule to the regime's taxable base.
	BasisTaxBase
)

// pipeline carries the running state of one Compute call between rules.
type pipeline struct {
	gross         decimal.Decimal
	contributions decimal.Decimal // sum of gross-basis flat-rate items
	taxBase       decimal.Decimal
	incomeTax     decimal.Decimal
}

// BaseRule computes a regime's taxable base from gross salary and the
// contributions already deducted from gross.
type BaseRule interface {
	taxableBase(gross, contributions decimal.Decimal) decimal.Decimal
}

// GrossBase taxes the full gross salary (the common case).
type GrossBase struct{}

func (GrossBase) taxableBase(gross, _ decimal.Decimal) decimal.Decimal {
	return gross
}

// ContributionAdjustedBase taxes gross minus social contributions, as
// Germany does.
type ContributionAdjustedBase struct{}

func (ContributionAdjustedBase) taxableBase(gross, contributions decimal.Decimal) decimal.Decimal {
	base := gross.Sub(contributions)
	if base.IsNegative() {
		return decimal.Zero
	}
	return base
}

// DeemedExpenseBase treats a fixed share of gross as deemed business
// expenses, leaving TaxableRate of gross taxable. When Cap is positive,
// income above Cap gets no expense deduction and is fully taxable.
type DeemedExpenseBase struct {
	TaxableRate decimal.Decimal
	Cap         decimal.Decimal
}

func (b DeemedExpenseBase) taxableBase(gross, _ decimal.Decimal) decimal.Decimal {
	if b.Cap.IsPositive() && gross.GreaterThan(b.Cap) {
		return b.Cap.Mul(b.TaxableRate).Add(gross.Sub(b.Cap))
	}
	return gross.Mul(b.TaxableRate)
}

// DeductionRule produces one line item of a regime's deduction pipeline.
type DeductionRule interface {
	apply(p *pipeline) (Deduction, bool)
	grossContribution() bool
}

// FlatRate deducts a fixed percentage of its basis. Ceiling, when positive,
// caps the basis first; Scale, when positive, shrinks it (e.g. the Czech
// freelancer contributions computed on 50% of gross).
type FlatRate struct {
	Name    string
	Rate    decimal.Decimal
	Ceiling decimal.Decimal
	Scale   decimal.Decimal
	On      Basis
}

func (f FlatRate) grossContribution() bool { return f.On == BasisGross }

func (f FlatRate) apply(p *pipeline) (Deduction, bool) {
	basis := p.gross
	if f.On == BasisTaxBase {
		basis = p.taxBase
	}
	if f.Ceiling.IsPositive() && basis.GreaterThan(f.Ceiling) {
		basis = f.Ceiling
	}
	if f.Scale.IsPositive() {
		basis = basis.Mul(f.Scale)
	}
	amount := basis.Mul(f.Rate)
	if !amount.IsPositive() {
		return Deduction{}, false
	}
	return Deduction{Name: f.Name, Amount: amount, Rate: f.Rate, Basis: basis}, true
}

// Progressive deducts marginal-bracket income tax on its basis. Discount,
// when positive, is subtracted from the computed tax (never below zero).
// The resulting tax is recorded so surcharge rules can reference it.
type Progressive struct {
	Name     string
	Table    BracketTable
	Discount decimal.Decimal
	On       Basis
}

func (Progressive) grossContribution() bool { return false }

func (t Progressive) apply(p *pipeline) (Deduction, bool) {
	basis := p.gross
	if t.On == BasisTaxBase {
		basis = p.taxBase
	}
	amount, effective := t.Table.Apply(basis)
	if t.Discount.IsPositive() {
		amount = amount.Sub(t.Discount)
		if amount.IsNegative() {
			amount = decimal.Zero
		}
		if basis.IsPositive() {
			effective = amount.Div(basis)
		}
	}
	p.incomeTax = amount
	if !amount.IsPositive() {
		return Deduction{}, false
	}
	return Deduction{Name: t.Name, Amount: amount, Rate: effective, Basis: basis}, true
}

// TaxSurcharge deducts a percentage of the income tax itself once the tax
// exceeds Threshold (the German solidarity surcharge). It must be listed
// after the regime's Progressive rule.
type TaxSurcharge struct {
	Name      string
	Rate      decimal.Decimal
	Threshold decimal.Decimal
}

func (TaxSurcharge) grossContribution() bool { return false }

func (s TaxSurcharge) apply(p *pipeline) (Deduction, bool) {
	if !p.incomeTax.GreaterThan(s.Threshold) {
		return Deduction{}, false
	}
	amount := p.incomeTax.Mul(s.Rate)
	return Deduction{Name: s.Name, Amount: amount, Rate: s.Rate, Basis: p.incomeTax}, true
}
