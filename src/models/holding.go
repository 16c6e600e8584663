package models

import (
	"time"
)

// RawHolding is one broker-reported position row, ingested out-of-band from
// the upstream document store. Rows are immutable inputs to a recompute run.
type RawHolding struct {
	ID             int       `db:"id"`
	AccountID      string    `db:"account_id"`
	InstrumentCode string    `db:"instrument_code"`
	Description    string    `db:"description"`
	AssetClass     string    `db:"asset_class"`
	Quantity       float64   `db:"quantity"`
	CostPerUnit    float64   `db:"cost_per_unit"`
	Currency       string    `db:"currency"`
	CreatedAt      time.Time `db:"created_at"`
}
