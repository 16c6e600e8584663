package models

import "time"

// Quote is the latest known price for an instrument, refreshed out-of-band
// by the market sync job. Read-only to the recompute pipeline.
type Quote struct {
	InstrumentCode string    `db:"instrument_code"`
	Price          float64   `db:"price"`
	Currency       string    `db:"currency"`
	AsOf           time.Time `db:"as_of"`
}

// ExchangeRate converts FromCurrency into ToCurrency. The identity pair
// always resolves to 1 without a table row.
type ExchangeRate struct {
	FromCurrency string    `db:"from_currency"`
	ToCurrency   string    `db:"to_currency"`
	Rate         float64   `db:"rate"`
	AsOf         time.Time `db:"as_of"`
}
