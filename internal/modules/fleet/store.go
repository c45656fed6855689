// README: Truck store backed by PostgreSQL.
package fleet

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

func (s *Store) Create(ctx context.Context, t *Truck) error {
	row := s.db.QueryRow(ctx, `
		INSERT INTO trucks (license, price_per_day, level, image)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		t.License, t.PricePerDay, t.Level, t.Image,
	)
	return row.Scan(&t.ID)
}

func (s *Store) Get(ctx context.Context, id int64) (*Truck, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, license, price_per_day, level, image
		FROM trucks
		WHERE id = $1`, id,
	)
	var t Truck
	err := row.Scan(&t.ID, &t.License, &t.PricePerDay, &t.Level, &t.Image)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Store) List(ctx context.Context) ([]Truck, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, license, price_per_day, level, image
		FROM trucks
		ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trucks []Truck
	for rows.Next() {
		var t Truck
		if err := rows.Scan(&t.ID, &t.License, &t.PricePerDay, &t.Level, &t.Image); err != nil {
			return nil, err
		}
		trucks = append(trucks, t)
	}
	return trucks, rows.Err()
}

// Update replaces every mutable field of the truck row.
func (s *Store) Update(ctx context.Context, t *Truck) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE trucks
		SET license = $1, price_per_day = $2, level = $3, image = $4
		WHERE id = $5`,
		t.License, t.PricePerDay, t.Level, t.Image, t.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM trucks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// HasBookings reports whether any booking still references the truck.
func (s *Store) HasBookings(ctx context.Context, id int64) (bool, error) {
	row := s.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM bookings WHERE truck_id = $1
		)`, id,
	)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
