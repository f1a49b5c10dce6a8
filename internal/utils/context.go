// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// OperatorCtxKey is the key used to store the authenticated control API
// operator in the context.
//
//	ctx := context.WithValue(ctx, utils.OperatorCtxKey, "ops")
var OperatorCtxKey = contextKey("operator")

// TraceIDCtxKey is the key used to store the request trace id.
var TraceIDCtxKey = contextKey("traceID")

// GetOperatorFromContext retrieves the control API operator from the context.
//
// Returns ok == false if the value is missing or has an unexpected type.
func GetOperatorFromContext(ctx context.Context) (string, bool) {
	operator, ok := ctx.Value(OperatorCtxKey).(string)
	return operator, ok
}

// GetTraceIDFromContext retrieves the request trace id from the context.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
