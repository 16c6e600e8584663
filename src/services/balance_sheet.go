package services

import (
	"networth/src/models"
	"networth/src/schemas"
	"sort"
)

// BalanceSheetAssembler combines aggregated securities with the other asset
// categories and account-level cash/debt into one net-worth figure.
type BalanceSheetAssembler struct {
	tables MarketTables
}

func NewBalanceSheetAssembler(tables MarketTables) *BalanceSheetAssembler {
	return &BalanceSheetAssembler{tables: tables}
}

// Assemble builds the balance sheet for one period. A failed currency
// lookup degrades that record's contribution to 0 and flags the category;
// it never aborts the assembly, so one stale FX pair cannot take the whole
// snapshot down.
func (b *BalanceSheetAssembler) Assemble(
	periodKey string,
	holdings []models.AggregatedHolding,
	otherAssets []models.OtherAsset,
	balances []models.AccountBalance,
	accountCount int,
) schemas.BalanceSheet {
	sheet := schemas.BalanceSheet{
		PeriodKey:       periodKey,
		SecurityCount:   len(holdings),
		AccountCount:    accountCount,
		OtherAssetCount: len(otherAssets),
	}
	degraded := make(map[string]bool)

	// Securities: only positive market values contribute to the bucket.
	for _, h := range holdings {
		if h.ValueBase > 0 {
			sheet.SecuritiesValueBase += h.ValueBase
		}
	}

	for i := range otherAssets {
		asset := &otherAssets[i]
		rate, ok := b.tables.RateFor(asset.Currency)
		if !ok {
			degraded[asset.Category] = true
			continue
		}
		asset.CostBase = asset.Cost * rate
		asset.ValueBase = asset.Value * rate
		asset.DepositBase = asset.Deposit * rate
		asset.LoanBase = asset.Loan * rate
		asset.DebtBase = asset.Debt * rate

		switch asset.Category {
		case models.CategoryInsurance:
			sheet.InsuranceValueBase += asset.ValueBase
		case models.CategoryFund:
			sheet.FundsValueBase += asset.ValueBase
		case models.CategoryProperty:
			// Property equity net of the mortgage still outstanding.
			sheet.PropertiesValueBase += asset.ValueBase - asset.DebtBase
		case models.CategoryBankAccount:
			sheet.BankDepositsBase += asset.DepositBase - asset.LoanBase
		}
	}

	for i := range balances {
		balance := &balances[i]
		rate, ok := b.tables.RateFor(balance.BaseCurrency)
		if !ok {
			degraded[schemas.BucketCash] = true
			continue
		}
		balance.CashBase = balance.CashOriginal * rate
		balance.DebtBase = balance.DebtOriginal * rate
		sheet.TotalCashBase += balance.CashBase
		sheet.TotalDebtBase += balance.DebtBase
	}

	sheet.TotalNetWorthBase = sheet.SecuritiesValueBase +
		sheet.InsuranceValueBase +
		sheet.FundsValueBase +
		sheet.PropertiesValueBase +
		sheet.BankDepositsBase +
		sheet.TotalCashBase -
		sheet.TotalDebtBase

	sheet.CompositionPct = b.composition(sheet)

	for category := range degraded {
		sheet.DegradedCategories = append(sheet.DegradedCategories, category)
	}
	sort.Strings(sheet.DegradedCategories)

	return sheet
}

// composition divides each bucket by the sum of all positive buckets. Cash
// counts as an asset bucket; debt is a contra item already netted into net
// worth and stays out of the denominator.
func (b *BalanceSheetAssembler) composition(sheet schemas.BalanceSheet) map[string]float64 {
	buckets := map[string]float64{
		schemas.BucketSecurities:   sheet.SecuritiesValueBase,
		schemas.BucketInsurance:    sheet.InsuranceValueBase,
		schemas.BucketFunds:        sheet.FundsValueBase,
		schemas.BucketProperties:   sheet.PropertiesValueBase,
		schemas.BucketBankDeposits: sheet.BankDepositsBase,
		schemas.BucketCash:         sheet.TotalCashBase,
	}

	var total float64
	for _, v := range buckets {
		if v > 0 {
			total += v
		}
	}

	pct := make(map[string]float64, len(buckets))
	for name, v := range buckets {
		pct[name] = sharePct(v, total)
	}
	return pct
}
