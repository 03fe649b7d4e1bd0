package currency

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFetcher counts calls and can be switched between a fixed rate set and
// a permanent failure.
type stubFetcher struct {
	rates map[string]decimal.Decimal
	err   error
	calls int
}

func (f *stubFetcher) Fetch(_ context.Context, _ string) (map[string]decimal.Decimal, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.rates, nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestService_Rate_SamePairIsParity(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("must not be called")}
	svc := NewService(fetcher, NewMemoryCache(), 24*time.Hour, nil)

	rate := svc.Rate(context.Background(), "EUR", "EUR")
	assert.True(t, rate.Equal(decimal.NewFromInt(1)))
	assert.Zero(t, fetcher.calls)
}

func TestService_Rate_FetchesOncePerFreshnessWindow(t *testing.T) {
	fetcher := &stubFetcher{rates: map[string]decimal.Decimal{"CZK": dec("24.7")}}
	svc := NewService(fetcher, NewMemoryCache(), 24*time.Hour, nil)

	for i := 0; i < 5; i++ {
		rate := svc.Rate(context.Background(), "EUR", "CZK")
		assert.True(t, rate.Equal(dec("24.7")), "rate = %s", rate)
	}
	assert.Equal(t, 1, fetcher.calls, "cached rate should suppress refetches")
}

func TestService_Rate_RefetchesAfterWindowExpires(t *testing.T) {
	fetcher := &stubFetcher{rates: map[string]decimal.Decimal{"CZK": dec("24.7")}}
	svc := NewService(fetcher, NewMemoryCache(), 24*time.Hour, nil)

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	svc.Rate(context.Background(), "EUR", "CZK")
	require.Equal(t, 1, fetcher.calls)

	// 23 hours later the cached value is still fresh.
	now = now.Add(23 * time.Hour)
	svc.Rate(context.Background(), "EUR", "CZK")
	assert.Equal(t, 1, fetcher.calls)

	// Past 24 hours it is refetched.
	now = now.Add(2 * time.Hour)
	svc.Rate(context.Background(), "EUR", "CZK")
	assert.Equal(t, 2, fetcher.calls)
}

func TestService_Rate_StaleCacheBeatsFallbackOnFetchFailure(t *testing.T) {
	fetcher := &stubFetcher{rates: map[string]decimal.Decimal{"CZK": dec("24.7")}}
	svc := NewService(fetcher, NewMemoryCache(), 24*time.Hour, nil)

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	svc.Rate(context.Background(), "EUR", "CZK")

	// The provider goes down and the cached value ages out of the window;
	// the stale value is still preferable to the static fallback.
	fetcher.err = errors.New("provider down")
	now = now.Add(48 * time.Hour)

	rate := svc.Rate(context.Background(), "EUR", "CZK")
	assert.True(t, rate.Equal(dec("24.7")), "rate = %s, want stale cached 24.7", rate)
}

func TestService_Rate_FallbackWhenNothingCached(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("provider down")}
	svc := NewService(fetcher, NewMemoryCache(), 24*time.Hour, nil)

	rate := svc.Rate(context.Background(), "EUR", "CZK")
	assert.True(t, rate.Equal(dec("25")), "rate = %s, want static fallback 25", rate)

	// Pairs without a fallback entry degrade to parity rather than failing.
	rate = svc.Rate(context.Background(), "EUR", "XYZ")
	assert.True(t, rate.Equal(decimal.NewFromInt(1)), "rate = %s", rate)
}

func TestService_Rate_MissingQuoteFallsBack(t *testing.T) {
	fetcher := &stubFetcher{rates: map[string]decimal.Decimal{"USD": dec("1.08")}}
	svc := NewService(fetcher, NewMemoryCache(), 24*time.Hour, nil)

	rate := svc.Rate(context.Background(), "EUR", "ILS")
	assert.True(t, rate.Equal(dec("4")), "rate = %s, want fallback 4", rate)
}

func TestService_Rate_CustomFallback(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("provider down")}
	svc := NewService(fetcher, NewMemoryCache(), 24*time.Hour, map[string]decimal.Decimal{
		"EUR/CZK": dec("23.5"),
	})

	rate := svc.Rate(context.Background(), "EUR", "CZK")
	assert.True(t, rate.Equal(dec("23.5")), "rate = %s", rate)
}

func TestService_Convert(t *testing.T) {
	fetcher := &stubFetcher{rates: map[string]decimal.Decimal{
		"CZK": dec("25"),
		"ILS": dec("4"),
	}}
	svc := NewService(fetcher, NewMemoryCache(), 24*time.Hour, nil)
	ctx := context.Background()

	assert.True(t, svc.Convert(ctx, dec("100"), "EUR", "EUR").Equal(dec("100")))
	assert.True(t, svc.Convert(ctx, dec("100"), "EUR", "CZK").Equal(dec("2500")))
	assert.True(t, svc.Convert(ctx, dec("2500"), "CZK", "EUR").Equal(dec("100")))
	// Cross rate goes through EUR.
	assert.True(t, svc.Convert(ctx, dec("25"), "CZK", "ILS").Equal(dec("4")))
}
