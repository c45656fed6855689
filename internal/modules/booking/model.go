// README: Booking aggregate: one truck reserved for a date range.
package booking

import "camprent/internal/types"

type Booking struct {
	ID         int64      `json:"id"`
	StartDate  types.Date `json:"start_date"`
	EndDate    types.Date `json:"end_date"`
	Email      string     `json:"email"`
	TruckID    int64      `json:"truck_id"`
	TotalPrice *int64     `json:"total_price"`
	Paid       bool       `json:"paid"`
	Confirmed  bool       `json:"confirmed"`
}

// Overlaps reports whether the booking's range intersects [start, end].
// Disjoint means the booking starts after the range ends or ends before it starts.
func (b Booking) Overlaps(start, end types.Date) bool {
	return !(b.StartDate.After(end) || b.EndDate.Before(start))
}
