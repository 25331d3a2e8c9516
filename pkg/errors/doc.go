// Package errors provides structured error types for better observability
// and programmatic error handling across devicekit.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInvalidRequest,
//	    "failed to load host snapshot",
//	    cause,
//	    map[string]any{
//	        "path": path,
//	        "os":   snap.OS,
//	    },
//	)
package errors
