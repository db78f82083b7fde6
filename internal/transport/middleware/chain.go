package middleware

import "net/http"

// Middleware wraps an http.Handler with extra behavior.
type Middleware func(http.Handler) http.Handler

// Chain folds middleware into one, outermost first:
// Chain(mw1, mw2)(h) serves requests through mw1, then mw2, then h.
// The app relies on this ordering to put request-id and recovery
// outside everything else.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}
