// Package validation binds HTTP requests into payload structs and validates
// them with go-playground/validator, producing errs.HTTPError values.
package validation
