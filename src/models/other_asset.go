package models

import "time"

const (
	CategoryFund        = "fund"
	CategoryBankAccount = "bankAccount"
	CategoryInsurance   = "insurance"
	CategoryProperty    = "property"
)

// OtherAsset is a non-securities asset record: funds, bank accounts,
// insurance policies and properties. Which monetary fields are meaningful
// depends on the category (properties carry value and debt, bank accounts
// carry deposit and loan).
type OtherAsset struct {
	AssetID   string    `db:"asset_id"`
	Category  string    `db:"category"`
	Currency  string    `db:"currency"`
	Cost      float64   `db:"cost"`
	Value     float64   `db:"value"`
	Deposit   float64   `db:"deposit"`
	Loan      float64   `db:"loan"`
	Debt      float64   `db:"debt"`
	CreatedAt time.Time `db:"created_at"`

	// Derived during assembly, not persisted.
	CostBase    float64 `db:"-"`
	ValueBase   float64 `db:"-"`
	DepositBase float64 `db:"-"`
	LoanBase    float64 `db:"-"`
	DebtBase    float64 `db:"-"`
}
