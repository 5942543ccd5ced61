// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// The cookbook domain errors (duplicate names, unknown items, circular
// dependencies, ...) carry an ErrorCode so that transport layers can map
// them to status codes without string matching.
//
// Example usage:
//
//	err := errors.Newf(
//	    errors.ErrCodeUnknownItem,
//	    "recipe %q requires unknown item %q", recipe, item,
//	)
//	if errors.HasCode(err, errors.ErrCodeUnknownItem) { ... }
package errors
