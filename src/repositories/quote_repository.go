package repositories

import (
	"context"

	"networth/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type QuoteRepository interface {
	GetAll(ctx context.Context) ([]models.Quote, error)
	Upsert(ctx context.Context, q *models.Quote) error
}

type quoteRepo struct {
	db *pgxpool.Pool
}

func NewQuoteRepository(db *pgxpool.Pool) QuoteRepository {
	return &quoteRepo{db: db}
}

func (r *quoteRepo) GetAll(ctx context.Context) ([]models.Quote, error) {
	rows, err := r.db.Query(ctx,
		`SELECT instrument_code, price, currency, as_of FROM quotes ORDER BY instrument_code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quotes []models.Quote
	for rows.Next() {
		var q models.Quote
		if err := rows.Scan(&q.InstrumentCode, &q.Price, &q.Currency, &q.AsOf); err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, rows.Err()
}

func (r *quoteRepo) Upsert(ctx context.Context, q *models.Quote) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO quotes (instrument_code, price, currency, as_of)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (instrument_code) DO UPDATE SET
			price = EXCLUDED.price,
			currency = EXCLUDED.currency,
			as_of = EXCLUDED.as_of`,
		q.InstrumentCode, q.Price, q.Currency, q.AsOf)
	return err
}
