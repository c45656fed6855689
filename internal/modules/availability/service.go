// README: Availability service: validates the range, scans the fleet, evaluates.
package availability

import (
	"context"
	"errors"

	"camprent/internal/metrics"
	"camprent/internal/modules/booking"
	"camprent/internal/modules/fleet"
	"camprent/internal/types"
)

var ErrInvalidRange = errors.New("end date must be after start date")

// FleetScan is the store capability the service needs; *Store implements it.
type FleetScan interface {
	Scan(ctx context.Context) ([]fleet.Truck, []booking.Booking, error)
}

type Service struct {
	store FleetScan
}

func NewService(store FleetScan) *Service {
	return &Service{store: store}
}

type Result struct {
	Available []fleet.Truck
	Proposed  []fleet.Truck
}

func (s *Service) Query(ctx context.Context, start, end types.Date) (*Result, error) {
	if start.IsZero() || end.IsZero() || !end.After(start) {
		return nil, ErrInvalidRange
	}
	trucks, bookings, err := s.store.Scan(ctx)
	if err != nil {
		return nil, err
	}
	available, proposed := Evaluate(start, end, trucks, bookings)
	metrics.AvailabilityQueries.Inc()
	return &Result{Available: available, Proposed: proposed}, nil
}
