package repositories

import (
	"context"
	"errors"

	"networth/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SnapshotRepository interface {
	GetByPeriod(ctx context.Context, periodKey string) (*models.PeriodicSnapshot, error)
	GetRange(ctx context.Context, fromKey, toKey string) ([]models.PeriodicSnapshot, error)
	// Upsert replaces the whole snapshot row for the period key: re-running a
	// period leaves exactly one canonical record behind.
	Upsert(ctx context.Context, tx pgx.Tx, s *models.PeriodicSnapshot) error
}

type snapshotRepo struct {
	db *pgxpool.Pool
}

func NewSnapshotRepository(db *pgxpool.Pool) SnapshotRepository {
	return &snapshotRepo{db: db}
}

const snapshotColumns = `period_key, securities_value_base, insurance_value_base, funds_value_base,
	properties_value_base, bank_deposits_base, total_cash_base, total_debt_base,
	total_net_worth_base, security_count, account_count, other_asset_count, created_at`

func (r *snapshotRepo) GetByPeriod(ctx context.Context, periodKey string) (*models.PeriodicSnapshot, error) {
	var s models.PeriodicSnapshot
	err := r.db.QueryRow(ctx,
		`SELECT `+snapshotColumns+` FROM periodic_snapshots WHERE period_key = $1`,
		periodKey).Scan(
		&s.PeriodKey, &s.SecuritiesValueBase, &s.InsuranceValueBase, &s.FundsValueBase,
		&s.PropertiesValueBase, &s.BankDepositsBase, &s.TotalCashBase, &s.TotalDebtBase,
		&s.TotalNetWorthBase, &s.SecurityCount, &s.AccountCount, &s.OtherAssetCount, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *snapshotRepo) GetRange(ctx context.Context, fromKey, toKey string) ([]models.PeriodicSnapshot, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+snapshotColumns+`
		FROM periodic_snapshots
		WHERE period_key >= $1 AND period_key <= $2
		ORDER BY period_key ASC`,
		fromKey, toKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []models.PeriodicSnapshot
	for rows.Next() {
		var s models.PeriodicSnapshot
		if err := rows.Scan(
			&s.PeriodKey, &s.SecuritiesValueBase, &s.InsuranceValueBase, &s.FundsValueBase,
			&s.PropertiesValueBase, &s.BankDepositsBase, &s.TotalCashBase, &s.TotalDebtBase,
			&s.TotalNetWorthBase, &s.SecurityCount, &s.AccountCount, &s.OtherAssetCount, &s.CreatedAt); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, rows.Err()
}

func (r *snapshotRepo) Upsert(ctx context.Context, tx pgx.Tx, s *models.PeriodicSnapshot) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO periodic_snapshots (period_key, securities_value_base, insurance_value_base,
			funds_value_base, properties_value_base, bank_deposits_base, total_cash_base,
			total_debt_base, total_net_worth_base, security_count, account_count, other_asset_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (period_key) DO UPDATE SET
			securities_value_base = EXCLUDED.securities_value_base,
			insurance_value_base = EXCLUDED.insurance_value_base,
			funds_value_base = EXCLUDED.funds_value_base,
			properties_value_base = EXCLUDED.properties_value_base,
			bank_deposits_base = EXCLUDED.bank_deposits_base,
			total_cash_base = EXCLUDED.total_cash_base,
			total_debt_base = EXCLUDED.total_debt_base,
			total_net_worth_base = EXCLUDED.total_net_worth_base,
			security_count = EXCLUDED.security_count,
			account_count = EXCLUDED.account_count,
			other_asset_count = EXCLUDED.other_asset_count`,
		s.PeriodKey, s.SecuritiesValueBase, s.InsuranceValueBase,
		s.FundsValueBase, s.PropertiesValueBase, s.BankDepositsBase, s.TotalCashBase,
		s.TotalDebtBase, s.TotalNetWorthBase, s.SecurityCount, s.AccountCount, s.OtherAssetCount)
	return err
}
