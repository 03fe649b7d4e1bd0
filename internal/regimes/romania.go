package regimes

import "github.com/paylens/salary-compare/internal/tax"

// RomaniaMicro returns the Romanian microenterprise regime for freelancers:
// a flat 1% tax on gross revenue, no bracket table, and no further
// deductions. Dividend-distribution tax and optional owner contributions
// are out of scope here.
func RomaniaMicro() tax.Regime {
	return tax.Regime{
		Key:            "romania-freelancer-micro",
		Title:          "Romania Freelancer (Microenterprise)",
		Country:        "Romania",
		EmploymentType: "freelancer",
		Currency:       "EUR",
		Base:           tax.GrossBase{},
		Rules: []tax.DeductionRule{
			tax.FlatRate{Name: "Microenterprise Tax", Rate: dec("0.01")},
		},
	}
}
