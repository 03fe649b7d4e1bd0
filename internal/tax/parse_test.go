package tax

import (
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"plain integer", "100000", "100000", false},
		{"thousands separators", "100,000", "100000", false},
		{"spaces as separators", "100 000", "100000", false},
		{"decimal point", "65000.50", "65000.50", false},
		{"surrounding whitespace", "  42000 ", "42000", false},
		{"zero", "0", "0", false},
		{"empty", "", "", true},
		{"only spaces", "   ", "", true},
		{"negative", "-5000", "", true},
		{"not a number", "lots", "", true},
		{"stray currency symbol", "€100000", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				var invalid *InvalidInputError
				if !errors.As(err, &invalid) {
					t.Fatalf("ParseAmount(%q) error = %v, want InvalidInputError", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) error = %v", tt.input, err)
			}
			if !got.Equal(d(tt.want)) {
				t.Errorf("ParseAmount(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}
