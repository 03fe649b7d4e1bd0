package regimes

import "github.com/paylens/salary-compare/internal/tax"

// Spanish regions share the state IRPF bracket structure and the employee
// social-security contribution (6.48% including the MEI surcharge, capped
// at the €58,914 annual contribution base); only the regional marginal
// rates differ.

func spainRegime(key, title string, brackets tax.BracketTable) tax.Regime {
	return tax.Regime{
		Key:            key,
		Title:          title,
		Country:        "Spain",
		EmploymentType: "salaried",
		Currency:       "EUR",
		Base:           tax.GrossBase{},
		Rules: []tax.DeductionRule{
			tax.FlatRate{Name: "Social Security", Rate: dec("0.0648"), Ceiling: dec("58914")},
			tax.Progressive{Name: "Income Tax", Table: brackets, On: tax.BasisGross},
		},
	}
}

// SpainMadrid returns the Madrid salaried regime (lowest regional rates).
func SpainMadrid() tax.Regime {
	return spainRegime("spain-madrid", "Madrid Salaried Employee", tax.BracketTable{
		{UpTo: dec("12450"), Rate: dec("0.19")},
		{UpTo: dec("20200"), Rate: dec("0.24")},
		{UpTo: dec("35200"), Rate: dec("0.30")},
		{UpTo: dec("60000"), Rate: dec("0.37")},
		{UpTo: dec("300000"), Rate: dec("0.45")},
		{Rate: dec("0.47"), Top: true},
	})
}

// SpainBarcelona returns the Catalonia salaried regime (highest regional
// rates).
func SpainBarcelona() tax.Regime {
	return spainRegime("spain-barcelona", "Barcelona Salaried Employee", tax.BracketTable{
		{UpTo: dec("12450"), Rate: dec("0.19")},
		{UpTo: dec("20200"), Rate: dec("0.24")},
		{UpTo: dec("35200"), Rate: dec("0.315")},
		{UpTo: dec("60000"), Rate: dec("0.385")},
		{UpTo: dec("300000"), Rate: dec("0.46")},
		{Rate: dec("0.48"), Top: true},
	})
}

// SpainValencia returns the Valencian Community salaried regime (rates
// between Madrid and Catalonia).
func SpainValencia() tax.Regime {
	return spainRegime("spain-valencia", "Valencia Salaried Employee", tax.BracketTable{
		{UpTo: dec("12450"), Rate: dec("0.19")},
		{UpTo: dec("20200"), Rate: dec("0.24")},
		{UpTo: dec("35200"), Rate: dec("0.305")},
		{UpTo: dec("60000"), Rate: dec("0.375")},
		{UpTo: dec("300000"), Rate: dec("0.455")},
		{Rate: dec("0.475"), Top: true},
	})
}
