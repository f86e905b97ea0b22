// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const keyNetID ctxKey = "netid"

// WithRequest annotates context with the request id
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID != "" {
		// set chi RequestID so chimw.GetReqID can retrieve it
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	return ctx
}

// WithNetID annotates context with the authenticated user's NetID
func WithNetID(ctx context.Context, netID string) context.Context {
	if netID != "" {
		ctx = context.WithValue(ctx, keyNetID, netID)
	}
	return ctx
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	if v := chimw.GetReqID(ctx); v != "" {
		return v
	}
	return ""
}

// NetID returns the authenticated NetID on the context if present
func NetID(ctx context.Context) string {
	if v, ok := ctx.Value(keyNetID).(string); ok {
		return v
	}
	return ""
}
