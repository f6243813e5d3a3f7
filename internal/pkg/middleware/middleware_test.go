package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtpkg "github.com/carevan/carevan/internal/pkg/jwt"
	"github.com/carevan/carevan/internal/pkg/logger"
	"github.com/carevan/carevan/internal/pkg/models"
)

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestAPIKeyMiddleware(t *testing.T) {
	cfg := &models.APIKeyConfig{DispatchKey: "dispatch-key", BillingKey: "billing-key"}
	m := NewAPIKeyMiddleware(cfg)

	tests := []struct {
		name     string
		key      string
		wantCode int
	}{
		{"dispatch key accepted", "dispatch-key", http.StatusOK},
		{"billing key accepted", "billing-key", http.StatusOK},
		{"missing key rejected", "", http.StatusUnauthorized},
		{"wrong key rejected", "nope", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.key != "" {
				req.Header.Set(APIKeyHeader, tt.key)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := m.Validate(okHandler)(c)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestAPIKeyMiddleware_UnconfiguredKeyNeverMatches(t *testing.T) {
	m := NewAPIKeyMiddleware(&models.APIKeyConfig{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(APIKeyHeader, "")
	rec := httptest.NewRecorder()

	err := m.Validate(okHandler)(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthMiddleware(t *testing.T) {
	cfg := models.JWTConfig{Secret: "test-secret", Issuer: "carevan-test"}
	userID := uuid.New()

	validToken, err := jwtpkg.GenerateToken(userID, "dispatcher", time.Hour, cfg)
	require.NoError(t, err)

	tests := []struct {
		name     string
		header   string
		wantCode int
	}{
		{"valid token", "Bearer " + validToken, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"malformed header", validToken, http.StatusUnauthorized},
		{"bad token", "Bearer garbage", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := JWTAuthMiddleware(cfg)(okHandler)(c)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode == http.StatusOK {
				assert.Equal(t, userID, c.Get("user_id"))
			}
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	e := echo.New()

	t.Run("generates an ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, RequestIDMiddleware()(okHandler)(c))
		id := rec.Header().Get(echo.HeaderXRequestID)
		require.NotEmpty(t, id)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	})

	t.Run("honors a caller-supplied ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderXRequestID, "upstream-id")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, RequestIDMiddleware()(okHandler)(c))
		assert.Equal(t, "upstream-id", rec.Header().Get(echo.HeaderXRequestID))
	})
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	zl, err := logger.New(models.LoggerConfig{Level: "error"})
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	panicking := func(echo.Context) error {
		panic("boom")
	}

	require.NotPanics(t, func() {
		_ = PanicRecoveryMiddleware(zl)(panicking)(c)
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
