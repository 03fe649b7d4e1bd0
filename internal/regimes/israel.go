package regimes

import (
	"context"

	"github.com/paylens/salary-compare/internal/tax"
)

// Israel returns the Israeli salaried regime: seven income-tax brackets
// defined in ILS and converted to EUR, mandatory national insurance and
// health tax, pension contributions, and the Keren Hishtalmut advanced
// training fund capped at ILS 188,544 of annual salary.
func Israel(ctx context.Context, fx RateSource) tax.Regime {
	ilsPerEUR := fx.Rate(ctx, "EUR", "ILS")

	brackets := tax.BracketTable{
		{UpTo: dec("83040"), Rate: dec("0.10")},
		{UpTo: dec("119040"), Rate: dec("0.14")},
		{UpTo: dec("185040"), Rate: dec("0.20")},
		{UpTo: dec("260040"), Rate: dec("0.31")},
		{UpTo: dec("560280"), Rate: dec("0.35")},
		{UpTo: dec("721560"), Rate: dec("0.47")},
		{Rate: dec("0.50"), Top: true},
	}.DividedBy(ilsPerEUR)

	kerenCap := dec("188544").Div(ilsPerEUR)

	return tax.Regime{
		Key:            "israel-salaried",
		Title:          "Israel Salaried Employee",
		Country:        "Israel",
		EmploymentType: "salaried",
		Currency:       "EUR",
		LocalCurrency:  "ILS",
		LocalRate:      ilsPerEUR,
		Base:           tax.GrossBase{},
		Rules: []tax.DeductionRule{
			tax.FlatRate{Name: "National Insurance", Rate: dec("0.04")},
			tax.FlatRate{Name: "Health Tax", Rate: dec("0.05")},
			tax.FlatRate{Name: "Pension", Rate: dec("0.06")},
			tax.FlatRate{Name: "Keren Hishtalmut", Rate: dec("0.025"), Ceiling: kerenCap},
			tax.Progressive{Name: "Income Tax", Table: brackets, On: tax.BasisGross},
		},
	}
}
