package regimes

import "github.com/paylens/salary-compare/internal/tax"

// portugalIRS returns the nine-bracket Portuguese IRS table (2024), shared
// by the salaried and simplified-regime freelancer calculations.
func portugalIRS() tax.BracketTable {
	return tax.BracketTable{
		{UpTo: dec("7703"), Rate: dec("0.1325")},
		{UpTo: dec("11623"), Rate: dec("0.18")},
		{UpTo: dec("16472"), Rate: dec("0.23")},
		{UpTo: dec("21321"), Rate: dec("0.26")},
		{UpTo: dec("27146"), Rate: dec("0.3275")},
		{UpTo: dec("39791"), Rate: dec("0.37")},
		{UpTo: dec("51997"), Rate: dec("0.435")},
		{UpTo: dec("81199"), Rate: dec("0.45")},
		{Rate: dec("0.48"), Top: true},
	}
}

// PortugalSalaried returns the standard Portuguese salaried regime:
// progressive IRS on gross plus the 11% employee TSU contribution.
func PortugalSalaried() tax.Regime {
	return tax.Regime{
		Key:            "portugal-salaried",
		Title:          "Portugal Salaried Employee",
		Country:        "Portugal",
		EmploymentType: "salaried",
		Currency:       "EUR",
		Base:           tax.GrossBase{},
		Rules: []tax.DeductionRule{
			tax.FlatRate{Name: "Social Security (TSU)", Rate: dec("0.11")},
			tax.Progressive{Name: "Income Tax (IRS)", Table: portugalIRS(), On: tax.BasisGross},
		},
	}
}

// PortugalFreelancer returns the simplified-regime freelancer calculation
// for services (coefficient 0.75): 75% of gross counts as deemed expenses,
// so IRS applies progressively to the remaining 25%, while social security
// is 21.4% on a 70%-of-gross contribution base.
func PortugalFreelancer() tax.Regime {
	return tax.Regime{
		Key:            "portugal-freelancer",
		Title:          "Portugal Freelancer",
		Country:        "Portugal",
		EmploymentType: "freelancer",
		Currency:       "EUR",
		Base:           tax.DeemedExpenseBase{TaxableRate: dec("0.25")},
		Rules: []tax.DeductionRule{
			tax.FlatRate{Name: "Social Security", Rate: dec("0.214"), Scale: dec("0.70")},
			tax.Progressive{Name: "Income Tax (IRS)", Table: portugalIRS(), On: tax.BasisTaxBase},
		},
	}
}
