// Package errs defines the error types returned to API clients.
//
// Every failure leaves the API as an HTTPError so clients always receive
// the same shape: {"error": message, "code": KIND, "status": code}, with
// field-level details for validation failures.
package errs
