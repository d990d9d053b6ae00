package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/bebe-pirat/edugame-api/internal/api/apierr"
	"github.com/bebe-pirat/edugame-api/internal/auth"
	"github.com/bebe-pirat/edugame-api/internal/model"
)

// TokenHeader is the request header carrying the session token
const TokenHeader = "x-auth-token"

type contextKey string

const claimsContextKey contextKey = "claims"

// Auth creates the authentication middleware. A missing token fails with
// 401 UNAUTHENTICATED; a present but invalid or expired token fails with
// 401 INVALID_TOKEN. On success the decoded claims are attached to the
// request context for downstream handlers.
func Auth(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				apierr.WriteError(w, apierr.NewUnauthenticatedError())
				return
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin creates the authorization middleware for admin-only routes.
// It is built on top of Auth and composes it internally, so the role
// check can never run against a request that has not already passed
// authentication.
func Admin(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	authenticate := Auth(tokens)
	return func(next http.Handler) http.Handler {
		return authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := MustGetClaims(r.Context())
			if claims.Role != model.RoleAdmin {
				apierr.WriteError(w, apierr.NewForbiddenError())
				return
			}
			next.ServeHTTP(w, r)
		}))
	}
}

// extractToken extracts the session token from the request.
// The x-auth-token header is the primary transport; a bearer
// Authorization header is accepted as a fallback.
func extractToken(r *http.Request) string {
	if token := r.Header.Get(TokenHeader); token != "" {
		return token
	}

	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}

// GetClaims returns the verified claims from the request context
func GetClaims(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsContextKey).(*auth.Claims)
	return claims
}

// MustGetClaims returns the verified claims or panics
func MustGetClaims(ctx context.Context) *auth.Claims {
	claims := GetClaims(ctx)
	if claims == nil {
		panic("no claims in context - auth middleware not applied?")
	}
	return claims
}
