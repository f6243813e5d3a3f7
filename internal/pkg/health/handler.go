package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/carevan/carevan/internal/pkg/logger"
)

// Checker reports whether one dependency is reachable.
type Checker interface {
	Check(ctx context.Context) error
}

// CheckerFunc adapts a function to the Checker interface.
type CheckerFunc func(ctx context.Context) error

func (f CheckerFunc) Check(ctx context.Context) error {
	return f(ctx)
}

// Service aggregates dependency checkers for readiness reporting.
type Service struct {
	log      *logger.ZapLogger
	checkers map[string]Checker
}

// NewService creates a health service
func NewService(log *logger.ZapLogger) *Service {
	return &Service{
		log:      log,
		checkers: make(map[string]Checker),
	}
}

// AddChecker registers a named dependency checker
func (s *Service) AddChecker(name string, checker Checker) {
	s.checkers[name] = checker
}

// CheckAll runs every registered checker with a short per-check timeout and
// returns the per-dependency status.
func (s *Service) CheckAll(ctx context.Context) (map[string]string, bool) {
	statuses := make(map[string]string, len(s.checkers))
	healthy := true

	for name, checker := range s.checkers {
		checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := checker.Check(checkCtx)
		cancel()

		if err != nil {
			statuses[name] = "unhealthy: " + err.Error()
			healthy = false
			s.log.Warn("Health check failed",
				logger.String("dependency", name),
				logger.Err(err))
			continue
		}
		statuses[name] = "healthy"
	}

	return statuses, healthy
}

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// RegisterHealthEndpoints registers ping, liveness, and readiness endpoints.
func RegisterHealthEndpoints(e *echo.Echo, serviceName, version string, svc *Service) {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	e.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, BuildInfo{
			Version:     version,
			ServiceName: serviceName,
			GoVersion:   runtime.Version(),
			Hostname:    hostname,
			ServerTime:  time.Now(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/ready", func(c echo.Context) error {
		statuses, healthy := svc.CheckAll(c.Request().Context())
		code := http.StatusOK
		if !healthy {
			code = http.StatusServiceUnavailable
		}
		return c.JSON(code, map[string]interface{}{
			"service":      serviceName,
			"dependencies": statuses,
		})
	})
}
