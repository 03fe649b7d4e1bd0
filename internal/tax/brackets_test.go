package tax

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testTable() BracketTable {
	return BracketTable{
		{UpTo: d("10000"), Rate: d("0.10")},
		{UpTo: d("30000"), Rate: d("0.20")},
		{Rate: d("0.30"), Top: true},
	}
}

func TestBracketTable_Apply(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{"zero", "0", "0"},
		{"negative", "-5", "0"},
		{"inside first bracket", "5000", "500"},
		{"exactly at first bound", "10000", "1000"},
		{"just above first bound", "10000.01", "1000.002"},
		{"inside second bracket", "20000", "3000"},
		{"exactly at second bound", "30000", "5000"},
		{"in top bracket", "50000", "11000"},
	}

	table := testTable()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tax, _ := table.Apply(d(tt.amount))
			if !tax.Equal(d(tt.want)) {
				t.Errorf("Apply(%s) = %s, want %s", tt.amount, tax, tt.want)
			}
		})
	}
}

func TestBracketTable_Apply_EffectiveRate(t *testing.T) {
	tax, effective := testTable().Apply(d("50000"))
	if !tax.Equal(d("11000")) {
		t.Fatalf("tax = %s, want 11000", tax)
	}
	if !effective.Equal(d("0.22")) {
		t.Errorf("effective rate = %s, want 0.22", effective)
	}
}

// Tax owed must never decrease as the amount grows, and the marginal slice
// can never exceed the top rate.
func TestBracketTable_Apply_Monotonic(t *testing.T) {
	table := testTable()
	prev := decimal.Zero
	for _, amount := range []string{"1", "9999", "10000", "10001", "29999", "30000", "30001", "100000"} {
		tax, _ := table.Apply(d(amount))
		if tax.LessThan(prev) {
			t.Fatalf("tax decreased at %s: %s < %s", amount, tax, prev)
		}
		prev = tax
	}
}

func TestBracketTable_Validate(t *testing.T) {
	tests := []struct {
		name    string
		table   BracketTable
		wantErr bool
	}{
		{"valid", testTable(), false},
		{"single top bracket", BracketTable{{Rate: d("0.10"), Top: true}}, false},
		{"empty", BracketTable{}, true},
		{"missing top", BracketTable{{UpTo: d("100"), Rate: d("0.1")}}, true},
		{"top not last", BracketTable{
			{Rate: d("0.1"), Top: true},
			{UpTo: d("100"), Rate: d("0.2")},
		}, true},
		{"bounds not increasing", BracketTable{
			{UpTo: d("100"), Rate: d("0.1")},
			{UpTo: d("100"), Rate: d("0.2")},
			{Rate: d("0.3"), Top: true},
		}, true},
		{"rate of one", BracketTable{{Rate: d("1"), Top: true}}, true},
		{"negative rate", BracketTable{{Rate: d("-0.1"), Top: true}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBracketTable_DividedBy(t *testing.T) {
	converted := testTable().DividedBy(d("25"))
	if !converted[0].UpTo.Equal(d("400")) {
		t.Errorf("first bound = %s, want 400", converted[0].UpTo)
	}
	if !converted[1].UpTo.Equal(d("1200")) {
		t.Errorf("second bound = %s, want 1200", converted[1].UpTo)
	}
	if !converted[2].Top {
		t.Errorf("top bracket lost its flag")
	}

	// Taxing a converted amount in the converted table matches taxing the
	// original amount in the original table, scaled by the same rate.
	originalTax, _ := testTable().Apply(d("50000"))
	convertedTax, _ := converted.Apply(d("2000"))
	if !convertedTax.Mul(d("25")).Equal(originalTax) {
		t.Errorf("converted tax %s * 25 != original tax %s", convertedTax, originalTax)
	}

	// Original table untouched.
	if !testTable()[0].UpTo.Equal(d("10000")) {
		t.Errorf("DividedBy mutated the source table")
	}
}
