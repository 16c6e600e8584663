package repositories

import (
	"context"

	"networth/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type OtherAssetRepository interface {
	GetAll(ctx context.Context) ([]models.OtherAsset, error)
	Upsert(ctx context.Context, asset *models.OtherAsset) error
}

type otherAssetRepo struct {
	db *pgxpool.Pool
}

func NewOtherAssetRepository(db *pgxpool.Pool) OtherAssetRepository {
	return &otherAssetRepo{db: db}
}

func (r *otherAssetRepo) GetAll(ctx context.Context) ([]models.OtherAsset, error) {
	rows, err := r.db.Query(ctx,
		`SELECT asset_id, category, currency, cost, value, deposit, loan, debt, created_at
		FROM other_assets
		ORDER BY category, asset_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []models.OtherAsset
	for rows.Next() {
		var a models.OtherAsset
		if err := rows.Scan(&a.AssetID, &a.Category, &a.Currency, &a.Cost, &a.Value,
			&a.Deposit, &a.Loan, &a.Debt, &a.CreatedAt); err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

func (r *otherAssetRepo) Upsert(ctx context.Context, asset *models.OtherAsset) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO other_assets (asset_id, category, currency, cost, value, deposit, loan, debt)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (asset_id) DO UPDATE SET
			category = EXCLUDED.category,
			currency = EXCLUDED.currency,
			cost = EXCLUDED.cost,
			value = EXCLUDED.value,
			deposit = EXCLUDED.deposit,
			loan = EXCLUDED.loan,
			debt = EXCLUDED.debt`,
		asset.AssetID, asset.Category, asset.Currency, asset.Cost, asset.Value,
		asset.Deposit, asset.Loan, asset.Debt)
	return err
}
