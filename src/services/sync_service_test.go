package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"networth/src/clients/fx"
	"networth/src/clients/quotes"
	"networth/src/models"
	"networth/src/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQuoteClient struct {
	prices   map[string]float64
	failFor  map[string]bool
	calls    []string
	zeroAsOf bool
}

func (c *fakeQuoteClient) GetQuote(symbol string) (*quotes.QuoteSchema, error) {
	c.calls = append(c.calls, symbol)
	if c.failFor[symbol] {
		return nil, errors.New("provider unavailable")
	}
	price, ok := c.prices[symbol]
	if !ok {
		return nil, errors.New("unknown symbol")
	}
	quote := &quotes.QuoteSchema{
		Symbol:   symbol,
		Price:    price,
		Currency: "USD",
	}
	if !c.zeroAsOf {
		quote.AsOf = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	}
	return quote, nil
}

type fakeFXClient struct {
	rates   map[string]float64
	failFor map[string]bool
	calls   []string
}

func (c *fakeFXClient) GetRate(from, to string) (*fx.RateSchema, error) {
	c.calls = append(c.calls, from+"/"+to)
	if c.failFor[from] {
		return nil, errors.New("provider unavailable")
	}
	rate, ok := c.rates[from]
	if !ok {
		return nil, errors.New("unknown currency")
	}
	return &fx.RateSchema{
		From: from,
		To:   to,
		Rate: rate,
		AsOf: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}, nil
}

type syncFixture struct {
	service     *services.SyncService
	quoteClient *fakeQuoteClient
	fxClient    *fakeFXClient
	quoteRepo   *fakeQuoteRepo
	rateRepo    *fakeRateRepo
}

func newSyncFixture() *syncFixture {
	f := &syncFixture{
		quoteClient: &fakeQuoteClient{
			prices:  map[string]float64{"AAPL": 180, "VOO": 470},
			failFor: map[string]bool{},
		},
		fxClient: &fakeFXClient{
			rates:   map[string]float64{"EUR": 1.1, "GBP": 1.3},
			failFor: map[string]bool{},
		},
		quoteRepo: &fakeQuoteRepo{},
		rateRepo:  &fakeRateRepo{},
	}
	f.service = services.NewSyncService(
		"USD",
		f.quoteClient,
		f.fxClient,
		&fakeRawHoldingRepo{holdings: []models.RawHolding{
			{AccountID: "acc-1", InstrumentCode: "AAPL", Quantity: 10, Currency: "USD"},
			{AccountID: "acc-2", InstrumentCode: "AAPL", Quantity: 5, Currency: "USD"},
			{AccountID: "acc-2", InstrumentCode: "VOO", Quantity: 3, Currency: "EUR"},
		}},
		&fakeOtherAssetRepo{assets: []models.OtherAsset{
			{AssetID: "fund-1", Category: models.CategoryFund, Currency: "GBP", Value: 1000},
		}},
		&fakeAccountBalanceRepo{balances: []models.AccountBalance{
			{AccountID: "acc-3", BaseCurrency: "USD", CashOriginal: 500},
		}},
		f.quoteRepo,
		f.rateRepo,
	)
	return f
}

func TestRefreshQuotes(t *testing.T) {
	ctx := context.Background()

	t.Run("stores one quote per distinct instrument", func(t *testing.T) {
		f := newSyncFixture()

		updated, err := f.service.RefreshQuotes(ctx)
		require.NoError(t, err)

		assert.Equal(t, 2, updated)
		assert.Equal(t, []string{"AAPL", "VOO"}, f.quoteClient.calls)
		require.Len(t, f.quoteRepo.upserts, 2)
		assert.Equal(t, 180.0, f.quoteRepo.upserts[0].Price)
	})

	t.Run("provider failure skips the instrument and continues", func(t *testing.T) {
		f := newSyncFixture()
		f.quoteClient.failFor["AAPL"] = true

		updated, err := f.service.RefreshQuotes(ctx)
		require.NoError(t, err)

		assert.Equal(t, 1, updated)
		require.Len(t, f.quoteRepo.upserts, 1)
		assert.Equal(t, "VOO", f.quoteRepo.upserts[0].InstrumentCode)
	})

	t.Run("zero as-of is replaced with now", func(t *testing.T) {
		f := newSyncFixture()
		f.quoteClient.zeroAsOf = true

		_, err := f.service.RefreshQuotes(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, f.quoteRepo.upserts)
		for _, q := range f.quoteRepo.upserts {
			assert.False(t, q.AsOf.IsZero())
		}
	})
}

func TestRefreshRates(t *testing.T) {
	ctx := context.Background()

	t.Run("fetches every non-base currency once", func(t *testing.T) {
		f := newSyncFixture()

		updated, err := f.service.RefreshRates(ctx)
		require.NoError(t, err)

		// USD appears in holdings and balances but is the base currency.
		assert.Equal(t, 2, updated)
		assert.Equal(t, []string{"EUR/USD", "GBP/USD"}, f.fxClient.calls)
		require.Len(t, f.rateRepo.upserts, 2)
		assert.Equal(t, "USD", f.rateRepo.upserts[0].ToCurrency)
	})

	t.Run("provider failure skips the currency and continues", func(t *testing.T) {
		f := newSyncFixture()
		f.fxClient.failFor["EUR"] = true

		updated, err := f.service.RefreshRates(ctx)
		require.NoError(t, err)

		assert.Equal(t, 1, updated)
		require.Len(t, f.rateRepo.upserts, 1)
		assert.Equal(t, "GBP", f.rateRepo.upserts[0].FromCurrency)
	})

	t.Run("store failure skips the currency and continues", func(t *testing.T) {
		f := newSyncFixture()
		f.rateRepo.err = errors.New("write failed")

		updated, err := f.service.RefreshRates(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, updated)
	})
}
