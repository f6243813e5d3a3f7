package logger

import (
	"time"

	"github.com/labstack/echo/v4"
)

// EchoMiddleware logs every HTTP request with latency and status.
func EchoMiddleware(zl *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			if raw := c.Request().URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			err := next(c)

			latency := time.Since(start)
			status := c.Response().Status
			requestID := c.Response().Header().Get(echo.HeaderXRequestID)

			fields := []Field{
				String("method", c.Request().Method),
				String("path", path),
				Int("status", status),
				Duration("latency", latency),
				String("client_ip", c.RealIP()),
				String("request_id", requestID),
			}
			if err != nil {
				fields = append(fields, Err(err))
				zl.Error("HTTP request", fields...)
				return err
			}

			if status >= 500 {
				zl.Error("HTTP request", fields...)
			} else {
				zl.Info("HTTP request", fields...)
			}
			return nil
		}
	}
}
