// README: Availability store: one outer-join scan of the fleet and its bookings.
package availability

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5/pgxpool"

	"camprent/internal/modules/booking"
	"camprent/internal/modules/fleet"
	"camprent/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Scan returns every truck together with every booking, from a single LEFT
// JOIN so trucks with zero bookings still appear.
func (s *Store) Scan(ctx context.Context) ([]fleet.Truck, []booking.Booking, error) {
	rows, err := s.db.Query(ctx, `
		SELECT t.id, t.license, t.price_per_day, t.level, t.image,
		       b.id, b.start_date, b.end_date
		FROM trucks t
		LEFT JOIN bookings b ON b.truck_id = t.id
		ORDER BY t.id`,
	)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var trucks []fleet.Truck
	var bookings []booking.Booking
	seen := make(map[int64]bool)

	for rows.Next() {
		var t fleet.Truck
		var bookingID sql.NullInt64
		var start, end sql.NullTime
		if err := rows.Scan(&t.ID, &t.License, &t.PricePerDay, &t.Level, &t.Image,
			&bookingID, &start, &end); err != nil {
			return nil, nil, err
		}
		if !seen[t.ID] {
			seen[t.ID] = true
			trucks = append(trucks, t)
		}
		if bookingID.Valid {
			bookings = append(bookings, booking.Booking{
				ID:        bookingID.Int64,
				TruckID:   t.ID,
				StartDate: types.DateOf(start.Time),
				EndDate:   types.DateOf(end.Time),
			})
		}
	}
	return trucks, bookings, rows.Err()
}
