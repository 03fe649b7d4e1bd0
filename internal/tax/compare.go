package tax

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Comparator runs one gross salary through several calculators for
// side-by-side presentation.
type Comparator struct {
	registry *Registry
}

// NewComparator returns a comparator backed by the given registry.
func NewComparator(registry *Registry) *Comparator {
	return &Comparator{registry: registry}
}

// Compare computes a result per key, preserving the caller's key order.
// It fails fast on the first unknown key or computation error with the
// offending key named: a partial comparison table would mislead the user.
func (c *Comparator) Compare(gross decimal.Decimal, keys []string) ([]Result, error) {
	results := make([]Result, 0, len(keys))
	for _, key := range keys {
		calc, err := c.registry.Get(key)
		if err != nil {
			return nil, err
		}
		res, err := calc.Compute(gross)
		if err != nil {
			return nil, fmt.Errorf("computing %s: %w", key, err)
		}
		results = append(results, res)
	}
	return results, nil
}
