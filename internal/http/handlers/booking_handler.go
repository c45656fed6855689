// README: Booking handlers for creation, lookup, flag updates, and deletion.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"camprent/internal/modules/booking"
	"camprent/internal/modules/pricing"
	"camprent/internal/types"
)

type BookingHandler struct {
	booking *booking.Service
}

func NewBookingHandler(svc *booking.Service) *BookingHandler {
	return &BookingHandler{booking: svc}
}

type createBookingReq struct {
	StartDate       types.Date `json:"start_date"`
	EndDate         types.Date `json:"end_date"`
	Email           string     `json:"email"`
	TruckID         int64      `json:"truck_id"`
	PortaPotti      bool       `json:"porta_potti"`
	CleaningService bool       `json:"cleaning_service"`
}

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.booking.List(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	if bookings == nil {
		bookings = []booking.Booking{}
	}
	writeJSON(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	b, err := h.booking.Get(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"booking": b})
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req createBookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	b, err := h.booking.Create(c.Request.Context(), booking.CreateCommand{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Email:     req.Email,
		TruckID:   req.TruckID,
		AddOns: pricing.AddOns{
			PortaPotti:      req.PortaPotti,
			CleaningService: req.CleaningService,
		},
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"booking": b})
}

type flagReq struct {
	Value *bool `json:"value"`
}

// flagValue reads the request body; an absent body means "set the flag".
func flagValue(c *gin.Context) bool {
	var req flagReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Value == nil {
		return true
	}
	return *req.Value
}

func (h *BookingHandler) SetPaid(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.booking.SetPaid(c.Request.Context(), id, flagValue(c)); err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"updated": id})
}

func (h *BookingHandler) SetConfirmed(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.booking.SetConfirmed(c.Request.Context(), id, flagValue(c)); err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"updated": id})
}

func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.booking.Delete(c.Request.Context(), id); err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"deleted": id})
}
