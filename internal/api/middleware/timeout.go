package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// TimeoutConfig returns timeout middleware configuration
func TimeoutConfig(timeout time.Duration) echo.MiddlewareFunc {
	return middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: timeout,
	})
}

// SelectiveTimeoutConfig applies the default timeout everywhere except the
// AI-heavy paths (assistant, import, export), which get the longer one
func SelectiveTimeoutConfig(defaultTimeout, aiTimeout time.Duration) echo.MiddlewareFunc {
	isSlow := func(path string) bool {
		return strings.Contains(path, "/ai/") ||
			strings.Contains(path, "/import") ||
			strings.Contains(path, "/export/pdf")
	}

	standard := TimeoutConfig(defaultTimeout)
	slow := TimeoutConfig(aiTimeout)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		standardNext := standard(next)
		slowNext := slow(next)
		return func(c echo.Context) error {
			if isSlow(c.Request().URL.Path) {
				return slowNext(c)
			}
			return standardNext(c)
		}
	}
}
