package regimes

import "github.com/paylens/salary-compare/internal/tax"

// Germany returns the German salaried regime (tax class 1, single, no
// children). Social contributions come off gross first; the progressive
// income tax applies to the reduced base, and the 5.5% solidarity surcharge
// applies to the income tax itself once it exceeds €1,000.
func Germany() tax.Regime {
	brackets := tax.BracketTable{
		{UpTo: dec("12096"), Rate: dec("0")},
		{UpTo: dec("22096"), Rate: dec("0.24")},
		{UpTo: dec("32096"), Rate: dec("0.32")},
		{UpTo: dec("42096"), Rate: dec("0.37")},
		{UpTo: dec("52096"), Rate: dec("0.40")},
		{UpTo: dec("62096"), Rate: dec("0.41")},
		{UpTo: dec("68480"), Rate: dec("0.42")},
		{UpTo: dec("277825"), Rate: dec("0.42")},
		{Rate: dec("0.45"), Top: true},
	}

	return tax.Regime{
		Key:            "germany-salaried",
		Title:          "Germany Salaried Employee",
		Country:        "Germany",
		EmploymentType: "salaried",
		Currency:       "EUR",
		Base:           tax.ContributionAdjustedBase{},
		Rules: []tax.DeductionRule{
			tax.FlatRate{Name: "Pension Insurance", Rate: dec("0.093"), Ceiling: dec("96000")},
			tax.FlatRate{Name: "Health Insurance", Rate: dec("0.091"), Ceiling: dec("62100")},
			tax.FlatRate{Name: "Unemployment Insurance", Rate: dec("0.013"), Ceiling: dec("96000")},
			tax.FlatRate{Name: "Long-Term Care Insurance", Rate: dec("0.02"), Ceiling: dec("62100")},
			tax.Progressive{Name: "Income Tax", Table: brackets, On: tax.BasisTaxBase},
			tax.TaxSurcharge{Name: "Solidarity Surcharge", Rate: dec("0.055"), Threshold: dec("1000")},
		},
	}
}
