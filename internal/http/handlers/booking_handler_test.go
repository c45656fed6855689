// README: Booking handler tests over the wire contract.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"camprent/internal/http/handlers"
	"camprent/internal/modules/booking"
	"camprent/internal/modules/pricing"
)

type memBookings struct {
	nextID   int64
	bookings map[int64]*booking.Booking
}

func newMemBookings() *memBookings {
	return &memBookings{nextID: 1, bookings: map[int64]*booking.Booking{}}
}

func (m *memBookings) Create(_ context.Context, b *booking.Booking) error {
	b.ID = m.nextID
	m.nextID++
	cp := *b
	m.bookings[b.ID] = &cp
	return nil
}

func (m *memBookings) Get(_ context.Context, id int64) (*booking.Booking, error) {
	b, ok := m.bookings[id]
	if !ok {
		return nil, booking.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (m *memBookings) List(_ context.Context) ([]booking.Booking, error) {
	out := make([]booking.Booking, 0, len(m.bookings))
	for id := int64(1); id < m.nextID; id++ {
		if b, ok := m.bookings[id]; ok {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *memBookings) SetFlag(_ context.Context, id int64, column string, value bool) error {
	b, ok := m.bookings[id]
	if !ok {
		return booking.ErrNotFound
	}
	if column == "paid" {
		b.Paid = value
	} else {
		b.Confirmed = value
	}
	return nil
}

func (m *memBookings) Delete(_ context.Context, id int64) error {
	if _, ok := m.bookings[id]; !ok {
		return booking.ErrNotFound
	}
	delete(m.bookings, id)
	return nil
}

type fakeRates map[int64]int64

func (f fakeRates) DayRate(_ context.Context, truckID int64) (int64, error) {
	rate, ok := f[truckID]
	if !ok {
		return 0, pricing.ErrTruckNotFound
	}
	return rate, nil
}

func buildBookingRouter() (*gin.Engine, *memBookings) {
	gin.SetMode(gin.TestMode)
	store := newMemBookings()
	svc := booking.NewService(store, pricing.NewService(fakeRates{1: 100}))
	h := handlers.NewBookingHandler(svc)

	r := gin.New()
	r.GET("/bookings", h.List)
	r.GET("/bookings/:id", h.Get)
	r.POST("/bookings", h.Create)
	r.PUT("/bookings/:id/paid", h.SetPaid)
	r.PUT("/bookings/:id/confirmed", h.SetConfirmed)
	r.DELETE("/bookings/:id", h.Delete)
	return r, store
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestCreateBooking_ComputesPrice(t *testing.T) {
	r, _ := buildBookingRouter()

	w := doJSON(r, http.MethodPost, "/bookings", map[string]any{
		"start_date": "2025-01-01",
		"end_date":   "2025-01-10",
		"email":      "renter@example.com",
		"truck_id":   1,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decode(t, w)
	b, ok := body["booking"].(map[string]any)
	if !ok {
		t.Fatalf("response missing booking key: %v", body)
	}
	if b["total_price"] != float64(900) {
		t.Errorf("total_price = %v, want 900", b["total_price"])
	}
}

// Domain failures ride an HTTP 200 with an error body; that is the wire
// contract the frontend consumes.
func TestCreateBooking_TooShort(t *testing.T) {
	r, store := buildBookingRouter()

	w := doJSON(r, http.MethodPost, "/bookings", map[string]any{
		"start_date": "2025-01-01",
		"end_date":   "2025-01-02",
		"truck_id":   1,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decode(t, w)
	if body["error"] == nil || body["error"] == "" {
		t.Errorf("expected error body, got %v", body)
	}
	if len(store.bookings) != 0 {
		t.Error("rejected booking must not be persisted")
	}
}

func TestCreateBooking_UnknownTruck(t *testing.T) {
	r, _ := buildBookingRouter()

	w := doJSON(r, http.MethodPost, "/bookings", map[string]any{
		"start_date": "2025-01-01",
		"end_date":   "2025-01-10",
		"truck_id":   42,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := decode(t, w); body["error"] != "truck not found" {
		t.Errorf("error = %v, want truck not found", body["error"])
	}
}

func TestCreateBooking_InvalidJSON(t *testing.T) {
	r, _ := buildBookingRouter()

	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestGetBooking_NotFound(t *testing.T) {
	r, _ := buildBookingRouter()

	w := doJSON(r, http.MethodGet, "/bookings/7", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := decode(t, w); body["error"] != "booking not found" {
		t.Errorf("error = %v, want booking not found", body["error"])
	}
}

func TestGetBooking_BadID(t *testing.T) {
	r, _ := buildBookingRouter()

	w := doJSON(r, http.MethodGet, "/bookings/abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestBookingFlagsAndDelete(t *testing.T) {
	r, store := buildBookingRouter()

	w := doJSON(r, http.MethodPost, "/bookings", map[string]any{
		"start_date": "2025-01-01",
		"end_date":   "2025-01-10",
		"truck_id":   1,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create status = %d", w.Code)
	}

	if w := doJSON(r, http.MethodPut, "/bookings/1/paid", nil); w.Code != http.StatusOK {
		t.Fatalf("paid status = %d", w.Code)
	}
	if w := doJSON(r, http.MethodPut, "/bookings/1/confirmed", map[string]any{"value": true}); w.Code != http.StatusOK {
		t.Fatalf("confirmed status = %d", w.Code)
	}
	if b := store.bookings[1]; !b.Paid || !b.Confirmed {
		t.Errorf("flags = paid:%v confirmed:%v, want both true", b.Paid, b.Confirmed)
	}

	// delete really deletes; it must not just flip a flag
	if w := doJSON(r, http.MethodDelete, "/bookings/1", nil); w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}
	if len(store.bookings) != 0 {
		t.Error("booking row must be gone after delete")
	}

	w = doJSON(r, http.MethodGet, "/bookings", nil)
	body := decode(t, w)
	if list, ok := body["bookings"].([]any); !ok || len(list) != 0 {
		t.Errorf("bookings = %v, want empty list", body["bookings"])
	}
}
