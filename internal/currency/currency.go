// Package currency provides exchange rates with a 24-hour freshness window,
// a pluggable cache, and static fallback rates. Rate lookups never fail:
// a fetch problem degrades to the last cached value, then to a hardcoded
// approximate rate, so a flaky rate API can never break a calculation.
package currency

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
)

// Rate is one exchange-rate observation: how many units of Quote one unit
// of Base buys, and when it was fetched.
type Rate struct {
	Base      string          `json:"base"`
	Quote     string          `json:"quote"`
	Value     decimal.Decimal `json:"value"`
	FetchedAt time.Time       `json:"fetched_at"`
}

// RateSource is the capability calculators depend on. Implementations never
// return an error; degradation to stale or fallback rates is internal.
type RateSource interface {
	Rate(ctx context.Context, base, quote string) decimal.Decimal
}

// Fetcher retrieves fresh rates for a base currency from an external
// source. The live implementation is Client; tests substitute stubs.
type Fetcher interface {
	Fetch(ctx context.Context, base string) (map[string]decimal.Decimal, error)
}

// DefaultFallbackRates returns the hardcoded approximate rates used when
// both the rate API and the cache are unavailable. Values carried over from
// the jurisdiction threshold documentation: 1 EUR ≈ 25 CZK, 4 ILS, and the
// BGN peg of 1.95583.
func DefaultFallbackRates() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"EUR/CZK": decimal.RequireFromString("25"),
		"EUR/ILS": decimal.RequireFromString("4"),
		"EUR/BGN": decimal.RequireFromString("1.95583"),
	}
}

// Service implements RateSource with cache-then-fetch-then-fallback
// semantics. The cache is explicit injected state, never a package global,
// so tests get isolated providers.
type Service struct {
	fetcher  Fetcher
	cache    Cache
	maxAge   time.Duration
	fallback map[string]decimal.Decimal
	now      func() time.Time
}

// NewService builds a rate service. maxAge is the freshness window (24h in
// production); fallback maps "BASE/QUOTE" pairs to static rates and may be
// nil to use DefaultFallbackRates.
func NewService(fetcher Fetcher, cache Cache, maxAge time.Duration, fallback map[string]decimal.Decimal) *Service {
	if fallback == nil {
		fallback = DefaultFallbackRates()
	}
	return &Service{
		fetcher:  fetcher,
		cache:    cache,
		maxAge:   maxAge,
		fallback: fallback,
		now:      time.Now,
	}
}

func pairKey(base, quote string) string {
	return base + "/" + quote
}

// Rate returns how many units of quote one unit of base buys. A cached rate
// younger than the freshness window is returned without any network call.
// Otherwise the service fetches; on any failure it falls back to the stale
// cached value if one exists, else to the static fallback rate.
func (s *Service) Rate(ctx context.Context, base, quote string) decimal.Decimal {
	if base == quote {
		return decimal.NewFromInt(1)
	}

	cached, haveCached := s.cache.Get(ctx, base, quote)
	if haveCached && s.now().Sub(cached.FetchedAt) < s.maxAge {
		return cached.Value
	}

	rates, err := s.fetcher.Fetch(ctx, base)
	if err == nil {
		v, found := rates[quote]
		if found && v.IsPositive() {
			s.cache.Put(ctx, Rate{Base: base, Quote: quote, Value: v, FetchedAt: s.now()})
			return v
		}
		err = fmt.Errorf("rate for %s missing from response", quote)
	}

	log.Printf("Warning: could not refresh %s/%s rate: %v", base, quote, err)
	if haveCached {
		return cached.Value
	}
	if v, found := s.fallback[pairKey(base, quote)]; found {
		return v
	}
	log.Printf("Warning: no fallback rate for %s/%s, assuming parity", base, quote)
	return decimal.NewFromInt(1)
}

// Convert translates amount between currencies using EUR-based rates.
func (s *Service) Convert(ctx context.Context, amount decimal.Decimal, from, to string) decimal.Decimal {
	switch {
	case from == to:
		return amount
	case from == "EUR":
		return amount.Mul(s.Rate(ctx, "EUR", to))
	case to == "EUR":
		return amount.Div(s.Rate(ctx, "EUR", from))
	default:
		return amount.Div(s.Rate(ctx, "EUR", from)).Mul(s.Rate(ctx, "EUR", to))
	}
}
