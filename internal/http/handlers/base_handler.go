// README: Base handler utilities (JSON helpers, domain error mapping).
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"camprent/internal/modules/availability"
	"camprent/internal/modules/booking"
	"camprent/internal/modules/fleet"
	"camprent/internal/modules/pricing"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeDomainError reports a domain failure. The wire contract keeps the
// transport status at 200 for domain-level failures; only transport problems
// (bad JSON, malformed ids) and internal errors get non-2xx codes.
func writeDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, fleet.ErrNotFound),
		errors.Is(err, fleet.ErrInUse),
		errors.Is(err, fleet.ErrBadRequest),
		errors.Is(err, booking.ErrNotFound),
		errors.Is(err, booking.ErrBadRequest),
		errors.Is(err, pricing.ErrInvalidDuration),
		errors.Is(err, pricing.ErrTruckNotFound),
		errors.Is(err, availability.ErrInvalidRange):
		writeError(c, http.StatusOK, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

// pathID parses the numeric :id segment; a non-integer id is a transport
// problem and is rejected with 400 before any service call.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
