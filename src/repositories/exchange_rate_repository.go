package repositories

import (
	"context"

	"networth/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ExchangeRateRepository interface {
	GetAll(ctx context.Context) ([]models.ExchangeRate, error)
	Upsert(ctx context.Context, rate *models.ExchangeRate) error
}

type exchangeRateRepo struct {
	db *pgxpool.Pool
}

func NewExchangeRateRepository(db *pgxpool.Pool) ExchangeRateRepository {
	return &exchangeRateRepo{db: db}
}

func (r *exchangeRateRepo) GetAll(ctx context.Context) ([]models.ExchangeRate, error) {
	rows, err := r.db.Query(ctx,
		`SELECT from_currency, to_currency, rate, as_of
		FROM exchange_rates
		ORDER BY from_currency, to_currency`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rates []models.ExchangeRate
	for rows.Next() {
		var er models.ExchangeRate
		if err := rows.Scan(&er.FromCurrency, &er.ToCurrency, &er.Rate, &er.AsOf); err != nil {
			return nil, err
		}
		rates = append(rates, er)
	}
	return rates, rows.Err()
}

func (r *exchangeRateRepo) Upsert(ctx context.Context, rate *models.ExchangeRate) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO exchange_rates (from_currency, to_currency, rate, as_of)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (from_currency, to_currency) DO UPDATE SET
			rate = EXCLUDED.rate,
			as_of = EXCLUDED.as_of`,
		rate.FromCurrency, rate.ToCurrency, rate.Rate, rate.AsOf)
	return err
}
