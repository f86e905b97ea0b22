package httpkit

import (
	"net/http"
	"strings"

	perrs "redsquare/internal/platform/errors"
	pnet "redsquare/internal/platform/net"
)

// Netid returns the authenticated NetID from the request context
func Netid(r *http.Request) (string, error) {
	nid := pnet.NetID(r.Context())
	if nid == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	return nid, nil
}

// MustNetid returns the authenticated NetID or panics
// only use on routes protected by the auth middleware
func MustNetid(r *http.Request) string {
	nid, err := Netid(r)
	if err != nil {
		panic(err)
	}
	return nid
}

// Token returns the raw bearer token from the Authorization header
func Token(r *http.Request) (string, error) {
	authz := r.Header.Get("Authorization")
	if strings.TrimSpace(authz) == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	// case-insensitive Bearer prefix (don't trim the whole header first)
	const prefix = "bearer "
	if len(authz) < len(prefix) || strings.ToLower(authz[:len(prefix)]) != prefix {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	raw := strings.TrimSpace(authz[len(prefix):])
	if raw == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	return raw, nil
}
