// README: Pricing store backed by PostgreSQL; resolves a truck's day rate.
package pricing

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) DayRate(ctx context.Context, truckID int64) (int64, error) {
	row := s.db.QueryRow(ctx, `SELECT price_per_day FROM trucks WHERE id = $1`, truckID)
	var rate int64
	err := row.Scan(&rate)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrTruckNotFound
	}
	if err != nil {
		return 0, err
	}
	return rate, nil
}
