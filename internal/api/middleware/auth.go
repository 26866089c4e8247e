package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dom/wardle/internal/service"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/hlog"
)

type contextKey string

const (
	AdminClaimsKey contextKey = "adminClaims"
)

// Admin rejects requests without a valid admin bearer token.
func Admin(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := hlog.FromRequest(r)

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn().Str("op", "middleware.Admin").Msg("missing authorization header")
				http.Error(w, "Authorization header required", http.StatusUnauthorized)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				logger.Warn().Str("op", "middleware.Admin").Msg("invalid authorization header format")
				http.Error(w, "Invalid authorization header", http.StatusUnauthorized)
				return
			}

			claims, err := authService.ValidateAdminToken(parts[1])
			if err != nil {
				logger.Warn().Err(err).Str("op", "middleware.Admin").Msg("token validation failed")
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), AdminClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetAdminClaims(ctx context.Context) (*jwt.RegisteredClaims, bool) {
	claims, ok := ctx.Value(AdminClaimsKey).(*jwt.RegisteredClaims)
	return claims, ok
}
