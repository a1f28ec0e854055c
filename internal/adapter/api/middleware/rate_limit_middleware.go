package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"phonedeck/internal/infrastructure/ratelimit"
	"phonedeck/pkg/errors"
	"phonedeck/pkg/logger"
	"phonedeck/pkg/response"
)

// RateLimit returns middleware that charges the caller's token bucket for
// the given action. Keyed by uid when authenticated, client IP otherwise.
func RateLimit(limiter *ratelimit.RateLimiter, action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key, ok := c.Get("uid").(string)
			if !ok || key == "" {
				key = c.RealIP()
			}

			allowed, wait := limiter.Allow(key, action)
			if !allowed {
				logger.Warn("Rate limit hit: key=%s action=%s wait=%v", key, action, wait)
				return response.Error(c, errors.TooManyRequests(
					fmt.Sprintf("Too many requests, retry in %.0f seconds", wait.Seconds()),
				))
			}

			return next(c)
		}
	}
}
