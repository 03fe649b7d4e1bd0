package regimes

import (
	"context"

	"github.com/paylens/salary-compare/internal/tax"
)

// Bulgaria returns the Bulgarian self-employed (sole trader) regime: the
// flat 10% income tax plus social security (19.8%) and health insurance
// (8%), both on a contribution base capped at BGN 72,000 per year converted
// to EUR. The contributions are included because the source rules apply
// them; see DESIGN.md for the recorded decision.
func Bulgaria(ctx context.Context, fx RateSource) tax.Regime {
	bgnPerEUR := fx.Rate(ctx, "EUR", "BGN")
	contributionCap := dec("72000").Div(bgnPerEUR)

	flatTen := tax.BracketTable{
		{Rate: dec("0.10"), Top: true},
	}

	return tax.Regime{
		Key:            "bulgaria-freelancer",
		Title:          "Bulgaria Freelancer",
		Country:        "Bulgaria",
		EmploymentType: "freelancer",
		Currency:       "EUR",
		LocalCurrency:  "BGN",
		LocalRate:      bgnPerEUR,
		Base:           tax.GrossBase{},
		Rules: []tax.DeductionRule{
			tax.FlatRate{Name: "Social Security", Rate: dec("0.198"), Ceiling: contributionCap},
			tax.FlatRate{Name: "Health Insurance", Rate: dec("0.08"), Ceiling: contributionCap},
			tax.Progressive{Name: "Income Tax", Table: flatTen, On: tax.BasisGross},
		},
	}
}
