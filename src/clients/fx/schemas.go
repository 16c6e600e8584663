package fx

import "time"

// RateSchema is the provider's wire format for one currency pair.
type RateSchema struct {
	From string    `json:"from"`
	To   string    `json:"to"`
	Rate float64   `json:"rate"`
	AsOf time.Time `json:"asOf"`
}
