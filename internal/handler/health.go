package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nyashahama/bkw-backend/internal/middleware"
	"github.com/nyashahama/bkw-backend/internal/server"
)

const healthCheckTimeout = 5 * time.Second

type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

type healthCheck struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

type healthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]healthCheck `json:"checks"`
}

// CheckHealth pings PostgreSQL and, when configured, Redis. A database
// failure answers 503. Redis only carries background e-mail, so its failure
// is reported without failing the check.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	logger := middleware.GetLogger(c).With().Str("operation", "health_check").Logger()

	response := healthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      map[string]healthCheck{},
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	dbCheck := healthCheck{Status: "unhealthy", Error: "not configured"}
	if h.server.DB != nil {
		dbCheck = h.check(ctx, "database", h.server.DB.Pool.Ping)
	}
	response.Checks["database"] = dbCheck
	if dbCheck.Status != "healthy" {
		response.Status = "unhealthy"
	}

	if h.server.Redis != nil {
		response.Checks["redis"] = h.check(ctx, "redis", func(ctx context.Context) error {
			return h.server.Redis.Ping(ctx).Err()
		})
	}

	if response.Status != "healthy" {
		logger.Warn().Dur("total_duration", time.Since(start)).Msg("health check failed")
		h.recordFailure("overall", nil)
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().Dur("total_duration", time.Since(start)).Msg("health check passed")
	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) check(ctx context.Context, name string, ping func(context.Context) error) healthCheck {
	start := time.Now()
	err := ping(ctx)
	elapsed := time.Since(start)

	if err != nil {
		h.server.Logger.Error().Err(err).Str("check", name).Dur("response_time", elapsed).Msg("health check failed")
		h.recordFailure(name, err)
		return healthCheck{Status: "unhealthy", ResponseTime: elapsed.String(), Error: err.Error()}
	}

	return healthCheck{Status: "healthy", ResponseTime: elapsed.String()}
}

func (h *HealthHandler) recordFailure(checkType string, err error) {
	if h.server.LoggerService == nil {
		return
	}
	app := h.server.LoggerService.GetApplication()
	if app == nil {
		return
	}

	attrs := map[string]any{
		"check_type": checkType,
		"operation":  "health_check",
	}
	if err != nil {
		attrs["error_message"] = err.Error()
	}
	app.RecordCustomEvent("HealthCheckError", attrs)
}
