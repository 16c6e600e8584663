package services

import (
	"networth/src/models"
)

// MarketTables is an immutable snapshot of the quote and FX tables for one
// run. The pipeline receives it as a parameter so that the whole computation
// is a pure function of (holdings, quotes, rates); nothing reads a
// process-wide cache.
type MarketTables struct {
	BaseCurrency string
	quotes       map[string]models.Quote
	rates        map[string]float64
}

func NewMarketTables(baseCurrency string, quotes []models.Quote, rates []models.ExchangeRate) MarketTables {
	t := MarketTables{
		BaseCurrency: baseCurrency,
		quotes:       make(map[string]models.Quote, len(quotes)),
		rates:        make(map[string]float64, len(rates)),
	}
	for _, q := range quotes {
		// Quote symbols go through the same canonicalization as holdings so
		// provider spellings line up with canonical ids.
		t.quotes[CanonicalizeCode(q.InstrumentCode)] = q
	}
	for _, r := range rates {
		if r.ToCurrency == baseCurrency {
			t.rates[r.FromCurrency] = r.Rate
		}
	}
	return t
}

// QuoteFor looks up the latest quote for a canonical id.
func (t MarketTables) QuoteFor(canonicalID string) (models.Quote, bool) {
	q, ok := t.quotes[CanonicalizeCode(canonicalID)]
	return q, ok
}

// RateFor returns the conversion rate from a currency into the base
// currency. The identity pair is always 1.
func (t MarketTables) RateFor(currency string) (float64, bool) {
	if currency == t.BaseCurrency {
		return 1.0, true
	}
	rate, ok := t.rates[currency]
	return rate, ok
}

// ResolutionStats counts the lookups that fell back. Both conditions are
// operator diagnostics, not errors: a missing rate converts at 1.0 and a
// missing quote prices at 0 so the stale position shows up as -100% P/L
// instead of silently disappearing.
type ResolutionStats struct {
	MissingQuotes int
	MissingRates  int
}

// RateResolver fills in the current price and FX rate for each aggregated
// holding from the market tables.
type RateResolver struct {
	tables MarketTables
}

func NewRateResolver(tables MarketTables) *RateResolver {
	return &RateResolver{tables: tables}
}

func (r *RateResolver) Resolve(holdings []models.AggregatedHolding) ([]models.AggregatedHolding, ResolutionStats) {
	var stats ResolutionStats
	resolved := make([]models.AggregatedHolding, len(holdings))
	for i, h := range holdings {
		if h.Policy == models.TreatmentFaceValue {
			// Par by convention; an explicit override quote wins.
			h.CurrentPrice = models.FaceValueUnitPrice
			if q, ok := r.tables.QuoteFor(h.CanonicalID); ok {
				h.CurrentPrice = q.Price
			}
		} else if q, ok := r.tables.QuoteFor(h.CanonicalID); ok {
			h.CurrentPrice = q.Price
		} else {
			h.CurrentPrice = 0
			stats.MissingQuotes++
		}

		if rate, ok := r.tables.RateFor(h.Currency); ok {
			h.FxRate = rate
		} else {
			h.FxRate = 1.0
			h.RateMissing = true
			stats.MissingRates++
		}
		resolved[i] = h
	}
	return resolved, stats
}
