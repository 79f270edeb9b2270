package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/auth"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/domain"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/http/response"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const contextKeyClaims contextKey = "claims"

// requireAuth is middleware that validates access tokens and attaches the
// operator's claims to the request context.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Missing authorization header", s.logger)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format", s.logger)
			return
		}

		claims, err := s.tokens.VerifyAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token", s.logger)
			return
		}

		ctx := context.WithValue(r.Context(), contextKeyClaims, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAdmin is middleware that ensures the authenticated operator holds
// the admin role. Must be used after requireAuth.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := getClaims(r.Context())
		if claims == nil || !claims.IsAdmin() {
			response.Forbidden(w, "Admin access required", s.logger)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// getClaims extracts the verified token claims from request context.
// Returns nil if not authenticated.
func getClaims(ctx context.Context) *auth.Claims {
	if claims, ok := ctx.Value(contextKeyClaims).(*auth.Claims); ok {
		return claims
	}
	return nil
}

// getRegion resolves the operator's home region from context, falling back
// to USA when unset.
func getRegion(ctx context.Context) domain.Region {
	if claims := getClaims(ctx); claims != nil && claims.Region != "" {
		return claims.Region
	}
	return domain.RegionUSA
}
