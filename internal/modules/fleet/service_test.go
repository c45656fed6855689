// README: Fleet service tests: CRUD validation and the delete guard.
package fleet

import (
	"context"
	"errors"
	"testing"
)

type memStore struct {
	nextID   int64
	trucks   map[int64]*Truck
	bookedBy map[int64]bool
}

func newMemStore() *memStore {
	return &memStore{nextID: 1, trucks: map[int64]*Truck{}, bookedBy: map[int64]bool{}}
}

func (m *memStore) Create(_ context.Context, t *Truck) error {
	t.ID = m.nextID
	m.nextID++
	cp := *t
	m.trucks[t.ID] = &cp
	return nil
}

func (m *memStore) Get(_ context.Context, id int64) (*Truck, error) {
	t, ok := m.trucks[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (m *memStore) List(_ context.Context) ([]Truck, error) {
	out := make([]Truck, 0, len(m.trucks))
	for id := int64(1); id < m.nextID; id++ {
		if t, ok := m.trucks[id]; ok {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (m *memStore) Update(_ context.Context, t *Truck) error {
	if _, ok := m.trucks[t.ID]; !ok {
		return ErrNotFound
	}
	cp := *t
	m.trucks[t.ID] = &cp
	return nil
}

func (m *memStore) Delete(_ context.Context, id int64) error {
	if _, ok := m.trucks[id]; !ok {
		return ErrNotFound
	}
	delete(m.trucks, id)
	return nil
}

func (m *memStore) HasBookings(_ context.Context, id int64) (bool, error) {
	return m.bookedBy[id], nil
}

func TestCreateAndGet(t *testing.T) {
	svc := NewService(newMemStore())
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateCommand{License: "ABC123", PricePerDay: 100, Level: "Standard"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID == 0 {
		t.Fatal("Create() did not assign an id")
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.License != "ABC123" || got.PricePerDay != 100 {
		t.Errorf("Get() = %+v", got)
	}

	if _, err := svc.Get(ctx, 99); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() missing id error = %v, want ErrNotFound", err)
	}
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(newMemStore())

	cases := []CreateCommand{
		{PricePerDay: 100},              // no license
		{License: "X"},                  // no rate
		{License: "X", PricePerDay: -5}, // negative rate
	}
	for _, cmd := range cases {
		if _, err := svc.Create(context.Background(), cmd); !errors.Is(err, ErrBadRequest) {
			t.Errorf("Create(%+v) error = %v, want ErrBadRequest", cmd, err)
		}
	}
}

func TestUpdate_ReplacesAllFields(t *testing.T) {
	svc := NewService(newMemStore())
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateCommand{License: "ABC123", PricePerDay: 100, Level: "Standard"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	updated, err := svc.Update(ctx, created.ID, CreateCommand{License: "XYZ789", PricePerDay: 150, Level: "Luxury", Image: "https://example.com/x.jpg"})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.License != "XYZ789" || updated.PricePerDay != 150 || updated.Level != "Luxury" {
		t.Errorf("Update() = %+v", updated)
	}

	if _, err := svc.Update(ctx, 99, CreateCommand{License: "X", PricePerDay: 1}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() missing id error = %v, want ErrNotFound", err)
	}
}

func TestDelete_GuardsBookedTrucks(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)
	ctx := context.Background()

	booked, _ := svc.Create(ctx, CreateCommand{License: "ABC123", PricePerDay: 100})
	idle, _ := svc.Create(ctx, CreateCommand{License: "XYZ789", PricePerDay: 150})
	store.bookedBy[booked.ID] = true

	if err := svc.Delete(ctx, booked.ID); !errors.Is(err, ErrInUse) {
		t.Errorf("Delete() booked truck error = %v, want ErrInUse", err)
	}
	if _, err := svc.Get(ctx, booked.ID); err != nil {
		t.Errorf("booked truck must survive the refused delete: %v", err)
	}

	if err := svc.Delete(ctx, idle.ID); err != nil {
		t.Fatalf("Delete() idle truck error = %v", err)
	}
	if _, err := svc.Get(ctx, idle.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}
}
