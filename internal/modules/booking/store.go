// README: Booking store backed by PostgreSQL.
package booking

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"camprent/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, b *Booking) error {
	row := s.db.QueryRow(ctx, `
		INSERT INTO bookings (start_date, end_date, email, truck_id, total_price, paid, confirmed)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		b.StartDate.Time(), b.EndDate.Time(), b.Email, b.TruckID, b.TotalPrice, b.Paid, b.Confirmed,
	)
	return row.Scan(&b.ID)
}

func (s *Store) Get(ctx context.Context, id int64) (*Booking, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, start_date, end_date, email, truck_id, total_price, paid, confirmed
		FROM bookings
		WHERE id = $1`, id,
	)
	b, err := scanBooking(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Store) List(ctx context.Context) ([]Booking, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, start_date, end_date, email, truck_id, total_price, paid, confirmed
		FROM bookings
		ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

// SetFlag flips one of the boolean lifecycle columns; repeat calls are no-ops
// at the row level, which keeps the operation idempotent.
func (s *Store) SetFlag(ctx context.Context, id int64, column string, value bool) error {
	var query string
	switch column {
	case "paid":
		query = `UPDATE bookings SET paid = $1 WHERE id = $2`
	case "confirmed":
		query = `UPDATE bookings SET confirmed = $1 WHERE id = $2`
	default:
		return errors.New("unknown booking flag: " + column)
	}
	tag, err := s.db.Exec(ctx, query, value, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	var start, end sql.NullTime
	var total sql.NullInt64
	err := row.Scan(&b.ID, &start, &end, &b.Email, &b.TruckID, &total, &b.Paid, &b.Confirmed)
	if err != nil {
		return nil, err
	}
	b.StartDate = types.DateOf(start.Time)
	b.EndDate = types.DateOf(end.Time)
	if total.Valid {
		v := total.Int64
		b.TotalPrice = &v
	}
	return &b, nil
}
