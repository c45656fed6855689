// README: Availability handler: partitions the fleet for a requested range.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"camprent/internal/modules/availability"
	"camprent/internal/modules/fleet"
	"camprent/internal/types"
)

type AvailabilityHandler struct {
	availability *availability.Service
}

func NewAvailabilityHandler(svc *availability.Service) *AvailabilityHandler {
	return &AvailabilityHandler{availability: svc}
}

type availabilityReq struct {
	StartDate types.Date `json:"start_date"`
	EndDate   types.Date `json:"end_date"`
}

func (h *AvailabilityHandler) Query(c *gin.Context) {
	var req availabilityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	res, err := h.availability.Query(c.Request.Context(), req.StartDate, req.EndDate)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	if res.Available == nil {
		res.Available = []fleet.Truck{}
	}
	if res.Proposed == nil {
		res.Proposed = []fleet.Truck{}
	}
	writeJSON(c, http.StatusOK, gin.H{
		"available_trucks": res.Available,
		"proposed_trucks":  res.Proposed,
	})
}
