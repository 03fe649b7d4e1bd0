package tax

import "github.com/shopspring/decimal"

// Deduction is a single line item of a calculation: what was deducted, the
// rate used, and the basis the rate was applied to.
type Deduction struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Rate   decimal.Decimal `json:"rate"`
	Basis  decimal.Decimal `json:"basis"`
}

// Result is a complete net-salary calculation. It is a flat value object:
// renderers and API clients consume it without knowing jurisdiction
// internals. NetSalary always equals GrossSalary minus TotalDeductions.
type Result struct {
	Key             string          `json:"key"`
	Country         string          `json:"country"`
	EmploymentType  string          `json:"employment_type"`
	Currency        string          `json:"currency"`
	GrossSalary     decimal.Decimal `json:"gross_salary"`
	TaxBase         decimal.Decimal `json:"tax_base"`
	Deductions      []Deduction     `json:"deductions"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetSalary       decimal.Decimal `json:"net_salary"`

	// LocalCurrency and LocalRate report the rate used when the regime's
	// thresholds were converted from a local currency (e.g. CZK brackets
	// converted to EUR). Empty for EUR-native regimes.
	LocalCurrency string          `json:"local_currency,omitempty"`
	LocalRate     decimal.Decimal `json:"local_currency_rate"`
}

// Info is the registry-facing description of a calculator, used to build
// selection menus.
type Info struct {
	Key            string `json:"key"`
	Title          string `json:"title"`
	Country        string `json:"country"`
	EmploymentType string `json:"employment_type"`
	Currency       string `json:"currency"`
}

// Calculator computes a net-salary breakdown for one jurisdiction and
// employment type.
type Calculator interface {
	Compute(gross decimal.Decimal) (Result, error)
	Info() Info
}
