package repositories

import (
	"context"

	"networth/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AccountBalanceRepository interface {
	GetAll(ctx context.Context) ([]models.AccountBalance, error)
	Upsert(ctx context.Context, balance *models.AccountBalance) error
}

type accountBalanceRepo struct {
	db *pgxpool.Pool
}

func NewAccountBalanceRepository(db *pgxpool.Pool) AccountBalanceRepository {
	return &accountBalanceRepo{db: db}
}

func (r *accountBalanceRepo) GetAll(ctx context.Context) ([]models.AccountBalance, error) {
	rows, err := r.db.Query(ctx,
		`SELECT account_id, base_currency, cash_original, debt_original, created_at
		FROM account_balances
		ORDER BY account_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var balances []models.AccountBalance
	for rows.Next() {
		var b models.AccountBalance
		if err := rows.Scan(&b.AccountID, &b.BaseCurrency, &b.CashOriginal, &b.DebtOriginal, &b.CreatedAt); err != nil {
			return nil, err
		}
		balances = append(balances, b)
	}
	return balances, rows.Err()
}

func (r *accountBalanceRepo) Upsert(ctx context.Context, balance *models.AccountBalance) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO account_balances (account_id, base_currency, cash_original, debt_original)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (account_id) DO UPDATE SET
			base_currency = EXCLUDED.base_currency,
			cash_original = EXCLUDED.cash_original,
			debt_original = EXCLUDED.debt_original`,
		balance.AccountID, balance.BaseCurrency, balance.CashOriginal, balance.DebtOriginal)
	return err
}
