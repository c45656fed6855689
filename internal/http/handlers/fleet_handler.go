// README: Fleet handlers for truck CRUD.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"camprent/internal/modules/fleet"
)

type FleetHandler struct {
	fleet *fleet.Service
}

func NewFleetHandler(svc *fleet.Service) *FleetHandler {
	return &FleetHandler{fleet: svc}
}

type truckReq struct {
	License     string `json:"license"`
	PricePerDay int64  `json:"price_per_day"`
	Level       string `json:"level"`
	Image       string `json:"image"`
}

func (r truckReq) command() fleet.CreateCommand {
	return fleet.CreateCommand{
		License:     r.License,
		PricePerDay: r.PricePerDay,
		Level:       r.Level,
		Image:       r.Image,
	}
}

func (h *FleetHandler) List(c *gin.Context) {
	trucks, err := h.fleet.List(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	if trucks == nil {
		trucks = []fleet.Truck{}
	}
	writeJSON(c, http.StatusOK, gin.H{"trucks": trucks})
}

func (h *FleetHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	t, err := h.fleet.Get(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"truck": t})
}

func (h *FleetHandler) Create(c *gin.Context) {
	var req truckReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	t, err := h.fleet.Create(c.Request.Context(), req.command())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"truck": t})
}

func (h *FleetHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req truckReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	t, err := h.fleet.Update(c.Request.Context(), id, req.command())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"truck": t})
}

func (h *FleetHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.fleet.Delete(c.Request.Context(), id); err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"deleted": id})
}
