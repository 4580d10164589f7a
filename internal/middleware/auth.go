package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/meeplehub/api/pkg/jwt"
)

// TokenValidator defines the interface for access token validation
type TokenValidator interface {
	Validate(token string) (*jwt.Claims, error)
}

// NicknameKey is the context key for the acting user's nickname
const NicknameKey contextKey = "nickname"

// ClaimsKey is the context key for JWT claims
const ClaimsKey contextKey = "claims"

// Auth returns a middleware that resolves the acting principal from the
// Authorization header and stores it in the request context.
func Auth(validator TokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeUnauthorized(w, "missing authorization header")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				writeUnauthorized(w, "invalid authorization header format")
				return
			}

			claims, err := validator.Validate(parts[1])
			if err != nil {
				switch err {
				case jwt.ErrTokenExpired:
					writeUnauthorized(w, "token expired")
				case jwt.ErrInvalidSignature:
					writeUnauthorized(w, "invalid token signature")
				default:
					writeUnauthorized(w, "invalid token")
				}
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, NicknameKey, claims.Nickname)
			ctx = context.WithValue(ctx, ClaimsKey, claims)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID extracts the acting user's record ID from context
func GetUserID(ctx context.Context) string {
	if id, ok := ctx.Value(UserIDKey).(string); ok {
		return id
	}
	return ""
}

// GetNickname extracts the acting user's nickname from context
func GetNickname(ctx context.Context) string {
	if nickname, ok := ctx.Value(NicknameKey).(string); ok {
		return nickname
	}
	return ""
}

// GetClaims extracts the JWT claims from context
func GetClaims(ctx context.Context) *jwt.Claims {
	if claims, ok := ctx.Value(ClaimsKey).(*jwt.Claims); ok {
		return claims
	}
	return nil
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  http.StatusUnauthorized,
		"message": message,
	})
}
