package repositories

import (
	"context"

	"networth/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type RawHoldingRepository interface {
	GetAll(ctx context.Context) ([]models.RawHolding, error)
	ListInstrumentCodes(ctx context.Context) ([]string, error)
	ListCurrencies(ctx context.Context) ([]string, error)
}

type rawHoldingRepo struct {
	db *pgxpool.Pool
}

func NewRawHoldingRepository(db *pgxpool.Pool) RawHoldingRepository {
	return &rawHoldingRepo{db: db}
}

func (r *rawHoldingRepo) GetAll(ctx context.Context) ([]models.RawHolding, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, account_id, instrument_code, description, asset_class, quantity, cost_per_unit, currency, created_at
		FROM raw_holdings
		ORDER BY account_id, instrument_code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holdings []models.RawHolding
	for rows.Next() {
		var h models.RawHolding
		if err := rows.Scan(&h.ID, &h.AccountID, &h.InstrumentCode, &h.Description, &h.AssetClass,
			&h.Quantity, &h.CostPerUnit, &h.Currency, &h.CreatedAt); err != nil {
			return nil, err
		}
		holdings = append(holdings, h)
	}
	return holdings, rows.Err()
}

func (r *rawHoldingRepo) ListInstrumentCodes(ctx context.Context) ([]string, error) {
	return r.listDistinct(ctx, `SELECT DISTINCT instrument_code FROM raw_holdings ORDER BY instrument_code`)
}

func (r *rawHoldingRepo) ListCurrencies(ctx context.Context) ([]string, error) {
	return r.listDistinct(ctx, `SELECT DISTINCT currency FROM raw_holdings ORDER BY currency`)
}

func (r *rawHoldingRepo) listDistinct(ctx context.Context, query string) ([]string, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}
