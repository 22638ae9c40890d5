// Package router builds the echo instance: global middleware, the error
// handler, the API routes and the system routes.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/nyashahama/bkw-backend/internal/handler"
	"github.com/nyashahama/bkw-backend/internal/middleware"
	"github.com/nyashahama/bkw-backend/internal/server"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)
	registerAPIRoutes(router, h, middlewares)

	return router
}
