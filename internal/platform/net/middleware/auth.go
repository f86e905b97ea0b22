package middleware

import (
	"net/http"

	pnet "redsquare/internal/platform/net"
)

// AuthPort is the seam the session service implements
type AuthPort interface {
	// Parse returns the authenticated NetID from the request or an error
	Parse(r *http.Request) (netID string, err error)
}

// Auth resolves bearer tokens through the port and stashes the NetID on the
// request context. A nil port leaves requests anonymous
func Auth(p AuthPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			netID, err := p.Parse(r)
			if err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			ctx := pnet.WithNetID(r.Context(), netID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
