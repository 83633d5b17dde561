package appctx

import "context"

// Context key for storing the per-request correlation ID
type contextKey string

const RequestIDContextKey contextKey = "request_id"

// SetRequestID adds the request correlation ID to the request context
func SetRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDContextKey, requestID)
}

// GetRequestID extracts the request correlation ID from the request context
func GetRequestID(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(RequestIDContextKey).(string)
	return requestID, ok
}
