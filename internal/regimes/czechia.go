package regimes

import (
	"context"

	"github.com/paylens/salary-compare/internal/tax"
)

// CzechiaSalaried returns the Czech salaried regime: the two-tier income
// tax (15% up to the CZK 1,867,728 threshold, 23% above, converted to EUR
// at the current rate) plus employee social security and health insurance
// on gross.
func CzechiaSalaried(ctx context.Context, fx RateSource) tax.Regime {
	czkPerEUR := fx.Rate(ctx, "EUR", "CZK")

	brackets := tax.BracketTable{
		{UpTo: dec("1867728"), Rate: dec("0.15")},
		{Rate: dec("0.23"), Top: true},
	}.DividedBy(czkPerEUR)

	return tax.Regime{
		Key:            "czechia-salaried",
		Title:          "Czechia Salaried Employee",
		Country:        "Czechia",
		EmploymentType: "salaried",
		Currency:       "EUR",
		LocalCurrency:  "CZK",
		LocalRate:      czkPerEUR,
		Base:           tax.GrossBase{},
		Rules: []tax.DeductionRule{
			tax.FlatRate{Name: "Social Security", Rate: dec("0.065")},
			tax.FlatRate{Name: "Health Insurance", Rate: dec("0.045")},
			tax.Progressive{Name: "Income Tax", Table: brackets, On: tax.BasisGross},
		},
	}
}

// CzechiaFreelancer returns the Czech freelancer regime under the 60/40
// rule: 60% of gross counts as deemed expenses, so income tax is a flat 15%
// on the remaining 40%. Social security (29.2%) and health insurance
// (13.5%) are each computed on 50% of gross — not on the 40% tax base; the
// two bases differ deliberately.
func CzechiaFreelancer(ctx context.Context, fx RateSource) tax.Regime {
	return tax.Regime{
		Key:            "czechia-freelancer",
		Title:          "Czechia Freelancer",
		Country:        "Czechia",
		EmploymentType: "freelancer",
		Currency:       "EUR",
		LocalCurrency:  "CZK",
		LocalRate:      fx.Rate(ctx, "EUR", "CZK"),
		Base:           tax.DeemedExpenseBase{TaxableRate: dec("0.40")},
		Rules: []tax.DeductionRule{
			tax.FlatRate{Name: "Social Security", Rate: dec("0.292"), Scale: dec("0.50")},
			tax.FlatRate{Name: "Health Insurance", Rate: dec("0.135"), Scale: dec("0.50")},
			tax.FlatRate{Name: "Income Tax", Rate: dec("0.15"), On: tax.BasisTaxBase},
		},
	}
}
