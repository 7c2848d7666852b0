// Package utils provides general-purpose helper utilities
// used across different parts of the SDK.
// Includes tools for working with context, type-safe keys, canonical JSON
// fingerprints, HTTP client initialization, request identifiers and the
// User-Agent string sent to the gateway.
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

// RequestIDCtxKey is the key used to store the request identifier in the
// context. The transport reuses an identifier found under this key for the
// X-Request-Id header instead of generating a new one.
//
// Example of writing a value to the context:
//
//	ctx := utils.WithRequestID(ctx, "0192f0c4-...")
var RequestIDCtxKey = contextKey("requestID")

// WithRequestID returns a copy of ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDCtxKey, requestID)
}

// GetRequestIDFromContext retrieves the request identifier from the context.
//
// Returns the identifier and an ok flag:
//   - ok == true  when a non-empty string is stored under RequestIDCtxKey
//   - ok == false when the value is missing, empty or of another type
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(RequestIDCtxKey).(string)
	return requestID, ok && requestID != ""
}
