package repositories

import (
	"context"

	"networth/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AggregatedHoldingRepository interface {
	GetAll(ctx context.Context) ([]models.AggregatedHolding, error)
	// ReplaceAll swaps the whole table for the recomputed set inside the
	// caller's transaction, so readers never observe a partial rebuild.
	ReplaceAll(ctx context.Context, tx pgx.Tx, holdings []models.AggregatedHolding) error
}

type aggregatedHoldingRepo struct {
	db *pgxpool.Pool
}

func NewAggregatedHoldingRepository(db *pgxpool.Pool) AggregatedHoldingRepository {
	return &aggregatedHoldingRepo{db: db}
}

func (r *aggregatedHoldingRepo) GetAll(ctx context.Context) ([]models.AggregatedHolding, error) {
	rows, err := r.db.Query(ctx,
		`SELECT canonical_id, display_name, currency, treatment_policy, total_quantity,
			avg_cost_per_unit, total_cost_original, account_count, current_price,
			cost_base, value_base, pl_ratio, cost_share_pct, value_share_pct
		FROM aggregated_holdings
		ORDER BY canonical_id, currency`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holdings []models.AggregatedHolding
	for rows.Next() {
		var h models.AggregatedHolding
		if err := rows.Scan(&h.CanonicalID, &h.DisplayName, &h.Currency, &h.Policy, &h.TotalQuantity,
			&h.AvgCostPerUnit, &h.TotalCostOriginal, &h.AccountCount, &h.CurrentPrice,
			&h.CostBase, &h.ValueBase, &h.PLRatio, &h.CostSharePct, &h.ValueSharePct); err != nil {
			return nil, err
		}
		holdings = append(holdings, h)
	}
	return holdings, rows.Err()
}

func (r *aggregatedHoldingRepo) ReplaceAll(ctx context.Context, tx pgx.Tx, holdings []models.AggregatedHolding) error {
	if _, err := tx.Exec(ctx, `DELETE FROM aggregated_holdings`); err != nil {
		return err
	}

	for i := range holdings {
		h := &holdings[i]
		_, err := tx.Exec(ctx,
			`INSERT INTO aggregated_holdings (canonical_id, display_name, currency, treatment_policy,
				total_quantity, avg_cost_per_unit, total_cost_original, account_count, current_price,
				cost_base, value_base, pl_ratio, cost_share_pct, value_share_pct)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
			h.CanonicalID, h.DisplayName, h.Currency, h.Policy,
			h.TotalQuantity, h.AvgCostPerUnit, h.TotalCostOriginal, h.AccountCount, h.CurrentPrice,
			h.CostBase, h.ValueBase, h.PLRatio, h.CostSharePct, h.ValueSharePct)
		if err != nil {
			return err
		}
	}
	return nil
}
