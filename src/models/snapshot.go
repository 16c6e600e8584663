package models

import "time"

// PeriodicSnapshot is one dated balance-sheet record. Exactly one row exists
// per period key; recomputing the same period replaces the whole row.
type PeriodicSnapshot struct {
	PeriodKey           string    `db:"period_key" json:"periodKey"`
	SecuritiesValueBase float64   `db:"securities_value_base" json:"securitiesValueBase"`
	InsuranceValueBase  float64   `db:"insurance_value_base" json:"insuranceValueBase"`
	FundsValueBase      float64   `db:"funds_value_base" json:"fundsValueBase"`
	PropertiesValueBase float64   `db:"properties_value_base" json:"propertiesValueBase"`
	BankDepositsBase    float64   `db:"bank_deposits_base" json:"bankDepositsBase"`
	TotalCashBase       float64   `db:"total_cash_base" json:"totalCashBase"`
	TotalDebtBase       float64   `db:"total_debt_base" json:"totalDebtBase"`
	TotalNetWorthBase   float64   `db:"total_net_worth_base" json:"totalNetWorthBase"`
	SecurityCount       int       `db:"security_count" json:"securityCount"`
	AccountCount        int       `db:"account_count" json:"accountCount"`
	OtherAssetCount     int       `db:"other_asset_count" json:"otherAssetCount"`
	CreatedAt           time.Time `db:"created_at" json:"createdAt"`
}
