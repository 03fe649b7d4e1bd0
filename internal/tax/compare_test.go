package tax

import (
	"errors"
	"testing"
)

func compareRegistry(t *testing.T) *Registry {
	t.Helper()
	reg := NewRegistry()
	for _, key := range []string{"low", "mid", "high"} {
		if err := reg.Register(key, namedRegime(key)); err != nil {
			t.Fatalf("Register(%s) error = %v", key, err)
		}
	}
	return reg
}

func TestComparator_Compare_PreservesOrder(t *testing.T) {
	c := NewComparator(compareRegistry(t))

	results, err := c.Compare(d("50000"), []string{"high", "low"})
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Key != "high" || results[1].Key != "low" {
		t.Errorf("result order = %q, %q; want caller order high, low", results[0].Key, results[1].Key)
	}
}

func TestComparator_Compare_UnknownKeyFailsFast(t *testing.T) {
	c := NewComparator(compareRegistry(t))

	_, err := c.Compare(d("50000"), []string{"low", "atlantis", "high"})
	var unknown *UnknownCalculatorError
	if !errors.As(err, &unknown) {
		t.Fatalf("Compare() error = %v, want UnknownCalculatorError", err)
	}
	if unknown.Key != "atlantis" {
		t.Errorf("error names key %q, want atlantis", unknown.Key)
	}
}

func TestComparator_Compare_InvalidGross(t *testing.T) {
	c := NewComparator(compareRegistry(t))

	_, err := c.Compare(d("-100"), []string{"low"})
	var invalid *InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("Compare() error = %v, want InvalidInputError", err)
	}
}
