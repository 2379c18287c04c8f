package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"gigmarket/pkg/errors"
	"gigmarket/pkg/logger"
	"gigmarket/pkg/response"
)

// IPRateLimit limits requests per client IP with a token bucket.
func IPRateLimit(rps float64, burst int) echo.MiddlewareFunc {
	store := echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(rps),
		Burst:     burst,
		ExpiresIn: 3 * time.Minute,
	})

	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return response.Error(c, errors.Forbidden("Unable to identify client", err))
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			logger.Warn("RATE LIMIT: blocked request from IP %s to %s", identifier, c.Path())
			return response.Error(c, errors.TooManyRequests("Rate limit exceeded", 0))
		},
	})
}

type ActionLimiter interface {
	Allow(userID, action string) (bool, time.Duration)
}

type budgetReporter interface {
	GetStatus(userID, action string) (tokens int, maxTokens int)
}

// UserActionLimit applies a per-user action budget. It must run after
// authentication. Limiters that report their budget also set the
// X-RateLimit-Limit and X-RateLimit-Remaining headers.
func UserActionLimit(limiter ActionLimiter, action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, _ := c.Get("uid").(string)
			if uid == "" || limiter == nil {
				return next(c)
			}

			if ok, wait := limiter.Allow(uid, action); !ok {
				logger.Warn("RATE LIMIT: user %s exceeded %s", uid, action)
				return response.Error(c, errors.TooManyRequests("Too many requests", wait))
			}

			if reporter, ok := limiter.(budgetReporter); ok {
				remaining, max := reporter.GetStatus(uid, action)
				c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(max))
				c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			}
			return next(c)
		}
	}
}
