package rest

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const identityKey contextKey = "identity"

// requireIdentity - extracts the caller identity from the bearer token and
// stores it on the request context.
func (that *Server) requireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			that.writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		identity, err := that.auth.ParseToken(token)
		if err != nil {
			that.writeError(w, http.StatusUnauthorized, "invalid session token")
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func identityFromContext(ctx context.Context) string {
	identity, _ := ctx.Value(identityKey).(string)

	return identity
}
