package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/nyashahama/bkw-backend/internal/middleware"
	"github.com/nyashahama/bkw-backend/internal/server"
	"github.com/nyashahama/bkw-backend/internal/validation"
)

// Handler holds the dependencies shared by all handlers.
type Handler struct {
	server *server.Server
}

func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc is a typed endpoint. Req is a pointer to a payload struct.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// handleRequest binds and validates req, runs handler and writes its result
// with status. Rejected input and missing rows are logged as warnings; only
// server-side failures are noticed on the New Relic transaction.
func handleRequest[Req validation.Validatable, Res any](
	c echo.Context,
	req Req,
	handler HandlerFunc[Req, Res],
	status int,
) error {
	start := time.Now()
	route := c.Path()

	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", route)
	}

	logger := middleware.GetLogger(c).With().
		Str("operation", "handler").
		Str("route", route).
		Logger()

	if err := validation.BindAndValidate(c, req); err != nil {
		validationDuration := time.Since(start)

		logger.Warn().
			Err(err).
			Dur("validation_duration", validationDuration).
			Msg("request validation failed")

		if txn != nil {
			txn.AddAttribute("validation.status", "failed")
			txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
		}
		return err
	}

	validationDuration := time.Since(start)
	if txn != nil {
		txn.AddAttribute("validation.status", "success")
		txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
	}

	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)

	if txn != nil {
		txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
	}

	if err != nil {
		failed := middleware.ResponseStatus(err) >= http.StatusInternalServerError

		event := logger.Warn()
		if failed {
			event = logger.Error()
		}
		event.
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", time.Since(start)).
			Msg("handler returned an error")

		if txn != nil {
			txn.AddAttribute("handler.status", "error")
			if failed {
				txn.NoticeError(nrpkgerrors.Wrap(err))
			}
		}
		return err
	}

	totalDuration := time.Since(start)
	if txn != nil {
		txn.AddAttribute("handler.status", "success")
		txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
	}

	logger.Info().
		Dur("handler_duration", handlerDuration).
		Dur("validation_duration", validationDuration).
		Dur("total_duration", totalDuration).
		Msg("request completed")

	return c.JSON(status, result)
}

// Handle wraps a typed endpoint into an echo.HandlerFunc. A fresh payload
// is allocated for every request, so the returned function may be built once
// and shared.
func Handle[P any, Req interface {
	*P
	validation.Validatable
}, Res any](
	h Handler,
	handler HandlerFunc[Req, Res],
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, Req(new(P)), handler, status)
	}
}
