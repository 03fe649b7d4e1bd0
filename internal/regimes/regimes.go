// Package regimes defines the supported country/employment-type tax regimes
// and assembles them into a calculator registry. Rates and thresholds follow
// each jurisdiction's published 2024/2025 figures; regimes with thresholds
// denominated in a local currency convert them to EUR at construction time
// through the injected rate source.
package regimes

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/paylens/salary-compare/internal/tax"
)

// RateSource is the slice of the currency service the regime builders need.
type RateSource interface {
	Rate(ctx context.Context, base, quote string) decimal.Decimal
}

// NewRegistry builds the full calculator registry. Registration order is
// fixed so Keys() stays stable for menus and comparison defaults.
func NewRegistry(ctx context.Context, fx RateSource) (*tax.Registry, error) {
	registry := tax.NewRegistry()
	for _, r := range []tax.Regime{
		Germany(),
		CzechiaSalaried(ctx, fx),
		CzechiaFreelancer(ctx, fx),
		Israel(ctx, fx),
		SpainMadrid(),
		SpainBarcelona(),
		SpainValencia(),
		RomaniaMicro(),
		Bulgaria(ctx, fx),
		PortugalSalaried(),
		PortugalFreelancer(),
	} {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("building regime registry: %w", err)
		}
		if err := registry.Register(r.Key, r); err != nil {
			return nil, fmt.Errorf("building regime registry: %w", err)
		}
	}
	return registry, nil
}

// dec parses a rate/threshold literal; regime tables are static so a parse
// failure is a programming error.
func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
