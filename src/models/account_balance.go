package models

import "time"

// AccountBalance is the cash and debt position of one brokerage account in
// that account's own settlement currency.
type AccountBalance struct {
	AccountID    string    `db:"account_id"`
	BaseCurrency string    `db:"base_currency"`
	CashOriginal float64   `db:"cash_original"`
	DebtOriginal float64   `db:"debt_original"`
	CreatedAt    time.Time `db:"created_at"`

	// Derived during assembly, not persisted.
	CashBase float64 `db:"-"`
	DebtBase float64 `db:"-"`
}
