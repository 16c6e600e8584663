package services

import (
	"context"
	"sort"
	"time"

	"networth/src/clients/fx"
	"networth/src/clients/quotes"
	"networth/src/models"
	"networth/src/repositories"
	"networth/src/utils"
)

type SyncServiceI interface {
	RefreshQuotes(ctx context.Context) (int, error)
	RefreshRates(ctx context.Context) (int, error)
}

// SyncService refreshes the quote and exchange-rate tables from the external
// providers. It runs out-of-band from recomputation: the pipeline only ever
// reads whatever these jobs last wrote.
type SyncService struct {
	baseCurrency string

	quoteClient quotes.QuoteClientI
	fxClient    fx.FXClientI

	rawHoldingRepo     repositories.RawHoldingRepository
	otherAssetRepo     repositories.OtherAssetRepository
	accountBalanceRepo repositories.AccountBalanceRepository
	quoteRepo          repositories.QuoteRepository
	rateRepo           repositories.ExchangeRateRepository
}

func NewSyncService(
	baseCurrency string,
	quoteClient quotes.QuoteClientI,
	fxClient fx.FXClientI,
	rawHoldingRepo repositories.RawHoldingRepository,
	otherAssetRepo repositories.OtherAssetRepository,
	accountBalanceRepo repositories.AccountBalanceRepository,
	quoteRepo repositories.QuoteRepository,
	rateRepo repositories.ExchangeRateRepository,
) *SyncService {
	return &SyncService{
		baseCurrency:       baseCurrency,
		quoteClient:        quoteClient,
		fxClient:           fxClient,
		rawHoldingRepo:     rawHoldingRepo,
		otherAssetRepo:     otherAssetRepo,
		accountBalanceRepo: accountBalanceRepo,
		quoteRepo:          quoteRepo,
		rateRepo:           rateRepo,
	}
}

// RefreshQuotes fetches the latest price for every distinct instrument code
// in the holdings table. Provider failures for individual instruments are
// logged and skipped; the rest of the refresh continues.
func (s *SyncService) RefreshQuotes(ctx context.Context) (int, error) {
	logger := utils.LoggerFromContext(ctx)

	codes, err := s.rawHoldingRepo.ListInstrumentCodes(ctx)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, code := range codes {
		quote, err := s.quoteClient.GetQuote(code)
		if err != nil {
			logger.Warnf("failed to fetch quote for %s: %v", code, err)
			continue
		}
		record := models.Quote{
			InstrumentCode: code,
			Price:          quote.Price,
			Currency:       quote.Currency,
			AsOf:           quote.AsOf,
		}
		if record.AsOf.IsZero() {
			record.AsOf = time.Now().UTC()
		}
		if err := s.quoteRepo.Upsert(ctx, &record); err != nil {
			logger.Errorf("failed to store quote for %s: %v", code, err)
			continue
		}
		updated++
	}

	logger.Infof("quote refresh finished: %d/%d instruments updated", updated, len(codes))
	return updated, nil
}

// RefreshRates fetches the conversion rate into the base currency for every
// currency seen across holdings, other assets and account balances.
func (s *SyncService) RefreshRates(ctx context.Context) (int, error) {
	logger := utils.LoggerFromContext(ctx)

	currencies, err := s.collectCurrencies(ctx)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, currency := range currencies {
		if currency == s.baseCurrency {
			continue
		}
		rate, err := s.fxClient.GetRate(currency, s.baseCurrency)
		if err != nil {
			logger.Warnf("failed to fetch rate %s/%s: %v", currency, s.baseCurrency, err)
			continue
		}
		record := models.ExchangeRate{
			FromCurrency: currency,
			ToCurrency:   s.baseCurrency,
			Rate:         rate.Rate,
			AsOf:         rate.AsOf,
		}
		if record.AsOf.IsZero() {
			record.AsOf = time.Now().UTC()
		}
		if err := s.rateRepo.Upsert(ctx, &record); err != nil {
			logger.Errorf("failed to store rate %s/%s: %v", currency, s.baseCurrency, err)
			continue
		}
		updated++
	}

	logger.Infof("rate refresh finished: %d currencies updated", updated)
	return updated, nil
}

func (s *SyncService) collectCurrencies(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)

	currencies, err := s.rawHoldingRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range currencies {
		seen[c] = true
	}

	otherAssets, err := s.otherAssetRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range otherAssets {
		seen[a.Currency] = true
	}

	balances, err := s.accountBalanceRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, b := range balances {
		seen[b.BaseCurrency] = true
	}

	result := make([]string, 0, len(seen))
	for c := range seen {
		result = append(result, c)
	}
	// Stable order keeps refresh logs and provider call patterns predictable
	sort.Strings(result)
	return result, nil
}
