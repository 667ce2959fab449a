package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"resumeforge/pkg/models"
	"resumeforge/pkg/utils"
)

const (
	defaultBodyLimit = 1 << 20  // 1MB
	importBodyLimit  = 12 << 20 // base64 image/PDF uploads
)

// RequestValidation middleware tags every request with an id and enforces
// body size limits. Import routes carry encoded uploads and get a larger cap.
func RequestValidation() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := utils.GenerateRequestID()
			c.Set("request_id", requestID)
			c.Response().Header().Set("X-Request-ID", requestID)

			if c.Request().Method == http.MethodPost || c.Request().Method == http.MethodPut {
				limit := int64(defaultBodyLimit)
				if strings.Contains(c.Request().URL.Path, "/import") {
					limit = importBodyLimit
				}
				if c.Request().ContentLength > limit {
					return c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
						Error:     "request_too_large",
						Message:   "Request body too large",
						RequestID: requestID,
						Timestamp: time.Now(),
					})
				}
			}

			return next(c)
		}
	}
}
