// Package middleware provides the HTTP middleware applied to mounted modules.
package middleware

import "net/http"

// Middleware wraps a handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// Chain wraps handler with mws. The first middleware is the outermost, so it
// sees the request first and the response last.
func Chain(handler http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		handler = mws[i](handler)
	}
	return handler
}
