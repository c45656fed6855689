// README: Pricing service computes booking totals: day rate times whole days plus add-ons.
package pricing

import (
	"context"
	"errors"

	"camprent/internal/types"
)

var (
	ErrInvalidDuration = errors.New("booking must be at least 3 days")
	ErrTruckNotFound   = errors.New("truck not found")
)

// RateSource resolves a truck's day rate; *Store implements it.
type RateSource interface {
	DayRate(ctx context.Context, truckID int64) (int64, error)
}

type Service struct {
	rates RateSource
}

func NewService(rates RateSource) *Service {
	return &Service{rates: rates}
}

// Quote prices a rental without touching the store. The duration check runs
// before any arithmetic; durations are whole days, never prorated.
func Quote(dayRate int64, start, end types.Date, addOns AddOns) (types.Money, error) {
	days := start.DaysUntil(end)
	if days < MinRentalDays {
		return types.Money{}, ErrInvalidDuration
	}
	return types.EUR(dayRate*int64(days) + addOns.total()), nil
}

// Price resolves the truck's day rate and quotes the rental. The caller is
// responsible for persisting the result.
func (s *Service) Price(ctx context.Context, truckID int64, start, end types.Date, addOns AddOns) (types.Money, error) {
	rate, err := s.rates.DayRate(ctx, truckID)
	if err != nil {
		return types.Money{}, err
	}
	return Quote(rate, start, end, addOns)
}
