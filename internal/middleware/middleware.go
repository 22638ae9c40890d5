// Package middleware holds the echo middleware shared by every route: request
// ids, the request-scoped logger, CORS, request logging, panic recovery,
// secure headers, New Relic tracing, rate limiting and the global error
// handler.
package middleware
