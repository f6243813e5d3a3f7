package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"

	"github.com/carevan/carevan/internal/pkg/models"
	"github.com/carevan/carevan/internal/utils"
)

const APIKeyHeader = "X-API-Key"

// APIKeyMiddleware validates keys for service-to-service calls
type APIKeyMiddleware struct {
	cfg *models.APIKeyConfig
}

// NewAPIKeyMiddleware creates an API key middleware from configuration
func NewAPIKeyMiddleware(cfg *models.APIKeyConfig) *APIKeyMiddleware {
	return &APIKeyMiddleware{cfg: cfg}
}

// Validate allows requests that present any of the configured keys.
func (m *APIKeyMiddleware) Validate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		apiKey := c.Request().Header.Get(APIKeyHeader)
		if apiKey == "" {
			return utils.UnauthorizedResponse(c, "API key is required")
		}

		for _, allowed := range []string{m.cfg.DispatchKey, m.cfg.BillingKey} {
			if allowed != "" && subtle.ConstantTimeCompare([]byte(apiKey), []byte(allowed)) == 1 {
				return next(c)
			}
		}

		return utils.UnauthorizedResponse(c, "Invalid API key")
	}
}
