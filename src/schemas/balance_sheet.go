package schemas

// BalanceSheet is the assembled view of all asset buckets for one period,
// before it is persisted as a PeriodicSnapshot.
type BalanceSheet struct {
	PeriodKey           string             `json:"periodKey"`
	SecuritiesValueBase float64            `json:"securitiesValueBase"`
	InsuranceValueBase  float64            `json:"insuranceValueBase"`
	FundsValueBase      float64            `json:"fundsValueBase"`
	PropertiesValueBase float64            `json:"propertiesValueBase"`
	BankDepositsBase    float64            `json:"bankDepositsBase"`
	TotalCashBase       float64            `json:"totalCashBase"`
	TotalDebtBase       float64            `json:"totalDebtBase"`
	TotalNetWorthBase   float64            `json:"totalNetWorthBase"`
	CompositionPct      map[string]float64 `json:"compositionPct"`
	DegradedCategories  []string           `json:"degradedCategories,omitempty"`
	SecurityCount       int                `json:"securityCount"`
	AccountCount        int                `json:"accountCount"`
	OtherAssetCount     int                `json:"otherAssetCount"`
}

// Bucket names used as CompositionPct keys. Debt is a contra item netted
// into total net worth, so it never appears here.
const (
	BucketSecurities   = "securities"
	BucketInsurance    = "insurance"
	BucketFunds        = "funds"
	BucketProperties   = "properties"
	BucketBankDeposits = "bankDeposits"
	BucketCash         = "cash"
)
