// AngelaMos | 2026
// token.go

package middleware

import (
	"net/http"
	"strings"
)

// TokenQueryParam is the query parameter browser clients use instead of the
// Authorization header.
const TokenQueryParam = "token"

// ExtractToken returns the bearer token from the query string, falling back
// to the Authorization header. Empty when neither carries one.
func ExtractToken(r *http.Request) string {
	if token := strings.TrimSpace(r.URL.Query().Get(TokenQueryParam)); token != "" {
		return token
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
