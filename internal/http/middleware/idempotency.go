// README: Redis-backed idempotency guard for booking creation.
package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	idempotencyHeader = "Idempotency-Key"
	// A crashed handler releases its in-progress lock after lockTTL.
	lockTTL = 10 * time.Second
	doneTTL = 24 * time.Hour
)

// Idempotency deduplicates retried writes carrying an Idempotency-Key header.
// Requests without the header pass through; a Redis outage fails open.
func Idempotency(client *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(idempotencyHeader)
		if key == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		redisKey := "idempotency:" + key

		val, err := client.Get(ctx, redisKey).Result()
		if err == nil {
			if val == "processing" {
				c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "concurrent request"})
				return
			}
			c.Header("X-Idempotency-Hit", "true")
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "request already processed"})
			return
		}
		if !errors.Is(err, redis.Nil) {
			c.Next()
			return
		}

		acquired, err := client.SetNX(ctx, redisKey, "processing", lockTTL).Result()
		if err != nil || !acquired {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "concurrent request"})
			return
		}

		c.Next()

		client.Set(ctx, redisKey, "done", doneTTL)
	}
}
