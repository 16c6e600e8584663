package quotes

import "time"

// QuoteSchema is the provider's wire format for a single instrument quote.
type QuoteSchema struct {
	Symbol   string    `json:"symbol"`
	Price    float64   `json:"price"`
	Currency string    `json:"currency"`
	AsOf     time.Time `json:"asOf"`
}
