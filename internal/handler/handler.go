// Package handler maps HTTP requests onto the service layer.
//
// Every endpoint is a typed function wrapped by Handle, which binds and
// validates the payload, logs and traces the call, and writes the JSON
// response. Errors are left to the global error handler.
package handler
