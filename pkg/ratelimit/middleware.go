package ratelimit

import (
	"fmt"
	"net/http"
	"strings"

	"cinebook/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

// Middleware applies per-IP rate limiting based on the route class
func Middleware(rateLimiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		limitType := getRateLimitType(c.FullPath())

		result, err := rateLimiter.IsAllowed(c.Request.Context(), clientIP, limitType)
		if err != nil {
			// A broken limiter must not take the API down
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetTime))

		if !result.Allowed {
			response.RespondJSON(c, "error", http.StatusTooManyRequests,
				"Rate limit exceeded", nil, map[string]interface{}{
					"limit":      result.Limit,
					"reset_time": result.ResetTime,
				})
			c.Abort()
			return
		}

		c.Next()
	}
}

func getRateLimitType(path string) RateLimitType {
	switch {
	case strings.Contains(path, "/auth/"):
		return RateLimitTypeAuth
	case strings.Contains(path, "/seats/payment"):
		return RateLimitTypeBooking
	case strings.Contains(path, "/admin/"):
		return RateLimitTypeAdmin
	case strings.Contains(path, "/movies"):
		return RateLimitTypePublic
	default:
		return RateLimitTypeDefault
	}
}
