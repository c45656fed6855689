// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"camprent/internal/http/handlers"
	"camprent/internal/http/middleware"
	"camprent/internal/modules/availability"
	"camprent/internal/modules/booking"
	"camprent/internal/modules/fleet"
)

type RouterDeps struct {
	Fleet        *fleet.Service
	Booking      *booking.Service
	Availability *availability.Service
	DB           *pgxpool.Pool
	Redis        *redis.Client
	Log          *zap.Logger
}

func NewRouter(deps RouterDeps) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Recovery(deps.Log))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(deps.Log))
	r.Use(middleware.CORS())

	fleetHandler := handlers.NewFleetHandler(deps.Fleet)
	r.GET("/trucks", fleetHandler.List)
	r.GET("/trucks/:id", fleetHandler.Get)
	r.POST("/trucks", fleetHandler.Create)
	r.PUT("/trucks/:id", fleetHandler.Update)
	r.DELETE("/trucks/:id", fleetHandler.Delete)

	bookingHandler := handlers.NewBookingHandler(deps.Booking)
	r.GET("/bookings", bookingHandler.List)
	r.GET("/bookings/:id", bookingHandler.Get)
	r.POST("/bookings", middleware.Idempotency(deps.Redis), bookingHandler.Create)
	r.PUT("/bookings/:id/paid", bookingHandler.SetPaid)
	r.PUT("/bookings/:id/confirmed", bookingHandler.SetConfirmed)
	r.DELETE("/bookings/:id", bookingHandler.Delete)

	availabilityHandler := handlers.NewAvailabilityHandler(deps.Availability)
	r.POST("/availability", availabilityHandler.Query)

	r.GET("/health", func(c *gin.Context) {
		if deps.DB != nil {
			if err := deps.DB.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
