// README: Fleet service: truck CRUD with a delete guard against dangling bookings.
package fleet

import (
	"context"
	"errors"
)

var (
	ErrNotFound   = errors.New("truck not found")
	ErrInUse      = errors.New("truck has bookings")
	ErrBadRequest = errors.New("bad request")
)

// TruckRepo is the persistence capability the service needs; *Store implements it.
type TruckRepo interface {
	Create(ctx context.Context, t *Truck) error
	Get(ctx context.Context, id int64) (*Truck, error)
	List(ctx context.Context) ([]Truck, error)
	Update(ctx context.Context, t *Truck) error
	Delete(ctx context.Context, id int64) error
	HasBookings(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	store TruckRepo
}

func NewService(store TruckRepo) *Service {
	return &Service{store: store}
}

type CreateCommand struct {
	License     string
	PricePerDay int64
	Level       string
	Image       string
}

func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Truck, error) {
	if cmd.License == "" || cmd.PricePerDay <= 0 {
		return nil, ErrBadRequest
	}
	t := &Truck{
		License:     cmd.License,
		PricePerDay: cmd.PricePerDay,
		Level:       cmd.Level,
		Image:       cmd.Image,
	}
	if err := s.store.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Truck, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Truck, error) {
	return s.store.List(ctx)
}

func (s *Service) Update(ctx context.Context, id int64, cmd CreateCommand) (*Truck, error) {
	if cmd.License == "" || cmd.PricePerDay <= 0 {
		return nil, ErrBadRequest
	}
	t := &Truck{
		ID:          id,
		License:     cmd.License,
		PricePerDay: cmd.PricePerDay,
		Level:       cmd.Level,
		Image:       cmd.Image,
	}
	if err := s.store.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete refuses to remove a truck that bookings still reference, so no
// booking row is ever left pointing at a missing truck.
func (s *Service) Delete(ctx context.Context, id int64) error {
	inUse, err := s.store.HasBookings(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return ErrInUse
	}
	return s.store.Delete(ctx, id)
}
