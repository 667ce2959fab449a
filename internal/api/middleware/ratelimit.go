package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"resumeforge/pkg/models"
)

// AIRateLimiter throttles the model-backed endpoints per client IP. The
// per-minute budget comes from configuration; bursts of a few requests are
// tolerated so a dialog's quick retries don't trip it.
type AIRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rpm      int
}

// NewAIRateLimiter creates a limiter allowing rpm requests per minute per client
func NewAIRateLimiter(rpm int) *AIRateLimiter {
	if rpm < 1 {
		rpm = 1
	}
	return &AIRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rpm:      rpm,
	}
}

func (rl *AIRateLimiter) limiterFor(clientIP string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters[clientIP]
	if !ok {
		burst := rl.rpm / 6
		if burst < 3 {
			burst = 3
		}
		limiter = rate.NewLimiter(rate.Limit(float64(rl.rpm)/60.0), burst)
		rl.limiters[clientIP] = limiter
	}
	return limiter
}

// Middleware rejects requests over the per-client budget with 429
func (rl *AIRateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !rl.limiterFor(c.RealIP()).Allow() {
				requestID, _ := c.Get("request_id").(string)
				return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
					Error:     "rate_limited",
					Message:   "Too many AI requests, slow down",
					RequestID: requestID,
					Timestamp: time.Now(),
				})
			}
			return next(c)
		}
	}
}
