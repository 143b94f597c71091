// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Value parsing failures carry ErrCodeInvalidValue or ErrCodeUnknownUnit so
// callers (the CLI, the HTTP API) can map them to user-facing responses
// without string matching:
//
//	if errors.CodeOf(err) == errors.ErrCodeInvalidValue {
//	    // report the offending token
//	}
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInvalidRequest,
//	    "failed to load configuration",
//	    cause,
//	    map[string]any{
//	        "uri": uri,
//	    },
//	)
package errors
