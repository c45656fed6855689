// README: Booking service: creation with pricing, flag updates, and deletion.
package booking

import (
	"context"
	"errors"

	"camprent/internal/metrics"
	"camprent/internal/modules/pricing"
	"camprent/internal/types"
)

var (
	ErrNotFound   = errors.New("booking not found")
	ErrBadRequest = errors.New("bad request")
)

// Pricing is the calculator collaborator; pricing.Service implements it.
type Pricing interface {
	Price(ctx context.Context, truckID int64, start, end types.Date, addOns pricing.AddOns) (types.Money, error)
}

// BookingRepo is the persistence capability the service needs; *Store implements it.
type BookingRepo interface {
	Create(ctx context.Context, b *Booking) error
	Get(ctx context.Context, id int64) (*Booking, error)
	List(ctx context.Context) ([]Booking, error)
	SetFlag(ctx context.Context, id int64, column string, value bool) error
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	store   BookingRepo
	pricing Pricing
}

func NewService(store BookingRepo, pricing Pricing) *Service {
	return &Service{store: store, pricing: pricing}
}

type CreateCommand struct {
	StartDate types.Date
	EndDate   types.Date
	Email     string
	TruckID   int64
	AddOns    pricing.AddOns
}

// Create prices the rental and persists the booking with the computed total.
// Pricing failures (too short, unknown truck) reject the booking outright.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Booking, error) {
	if cmd.TruckID == 0 || cmd.StartDate.IsZero() || cmd.EndDate.IsZero() {
		return nil, ErrBadRequest
	}
	price, err := s.pricing.Price(ctx, cmd.TruckID, cmd.StartDate, cmd.EndDate, cmd.AddOns)
	if err != nil {
		return nil, err
	}

	total := price.Amount
	b := &Booking{
		StartDate:  cmd.StartDate,
		EndDate:    cmd.EndDate,
		Email:      cmd.Email,
		TruckID:    cmd.TruckID,
		TotalPrice: &total,
	}
	if err := s.store.Create(ctx, b); err != nil {
		return nil, err
	}
	metrics.BookingsCreated.Inc()
	return b, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Booking, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Booking, error) {
	return s.store.List(ctx)
}

func (s *Service) SetPaid(ctx context.Context, id int64, paid bool) error {
	return s.store.SetFlag(ctx, id, "paid", paid)
}

func (s *Service) SetConfirmed(ctx context.Context, id int64, confirmed bool) error {
	return s.store.SetFlag(ctx, id, "confirmed", confirmed)
}

// Delete removes the row. One upstream revision flipped the confirmed flag
// here instead; that was a bug, not a semantic to keep.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}
