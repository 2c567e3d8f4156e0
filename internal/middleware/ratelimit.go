package middleware

import (
	"fmt"
	"log"
	"time"

	"anoa.com/certdash/pkg/apperror"
	"anoa.com/certdash/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// VerifyRateLimit throttles the public verification endpoint with a
// fixed window per client IP. With no redis client configured the
// middleware is a no-op.
func VerifyRateLimit(rdb *redis.Client, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil || window <= 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:verify:%s", c.ClientIP())
		wasSet, err := rdb.SetNX(c.Request.Context(), key, "locked", window).Result()
		if err != nil {
			// Redis being down must not take the endpoint down with it.
			log.Printf("rate limit check failed: %v", err)
			c.Next()
			return
		}
		if !wasSet {
			response.Error(c, apperror.New(0, "Too many verification requests, try again shortly", apperror.ErrRateLimitExceeded))
			c.Abort()
			return
		}

		c.Next()
	}
}
