// README: Availability evaluator: partitions the fleet into free and near-free trucks.
package availability

import (
	"camprent/internal/modules/booking"
	"camprent/internal/modules/fleet"
	"camprent/internal/types"
)

// BufferDays is the margin past the requested end within which a conflicting
// booking still makes its truck worth proposing as an alternate.
const BufferDays = 3

// Evaluate partitions trucks for the requested range.
//
// A truck is available when every booking referencing it is disjoint from
// [start, end]; a truck with no bookings is trivially available. A truck is
// proposed when at least one of its bookings conflicts with the range but
// ends no later than end+BufferDays: the truck frees up close enough to the
// request that shifting the dates by a few days would work. The two sets are
// computed independently and are neither disjoint nor exhaustive.
func Evaluate(start, end types.Date, trucks []fleet.Truck, bookings []booking.Booking) (available, proposed []fleet.Truck) {
	byTruck := make(map[int64][]booking.Booking, len(trucks))
	for _, b := range bookings {
		byTruck[b.TruckID] = append(byTruck[b.TruckID], b)
	}

	bufEnd := end.AddDays(BufferDays)

	for _, t := range trucks {
		free := true
		nearMiss := false
		for _, b := range byTruck[t.ID] {
			if b.Overlaps(start, end) {
				free = false
			}
			if b.StartDate.Before(end) && b.EndDate.After(start) && !b.EndDate.After(bufEnd) {
				nearMiss = true
			}
		}
		if free {
			available = append(available, t)
		}
		if nearMiss {
			proposed = append(proposed, t)
		}
	}
	return available, proposed
}
