package middleware

import (
	"context"
	"net/http"
	"strings"

	"clinic-booking-api/internal/auth"
	"clinic-booking-api/internal/domain/entity"
	"clinic-booking-api/pkg/apperrors"
	"clinic-booking-api/pkg/jwt"
	"clinic-booking-api/pkg/response"

	"github.com/google/uuid"
)

type contextKey string

const (
	UserIDKey    contextKey = "user_id"
	UserEmailKey contextKey = "user_email"
	RoleKey      contextKey = "role"
	TokenIDKey   contextKey = "token_id"
)

type AuthMiddleware struct {
	jwtService *jwt.JWTService
	tokenStore auth.TokenStore
}

func NewAuthMiddleware(jwtService *jwt.JWTService, tokenStore auth.TokenStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		tokenStore: tokenStore,
	}
}

// Authenticate extracts and verifies the bearer token, then attaches the
// caller's identity and role to the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Error(w, http.StatusUnauthorized, apperrors.CodeMissingToken, "Authorization header is required", nil)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Error(w, http.StatusUnauthorized, apperrors.CodeInvalidToken, "Invalid authorization header format", nil)
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Error(w, http.StatusUnauthorized, apperrors.CodeInvalidToken, "Invalid or expired token", nil)
			return
		}

		if claims.TokenType != jwt.AccessToken {
			response.Error(w, http.StatusUnauthorized, apperrors.CodeInvalidToken, "Invalid token type", nil)
			return
		}

		valid, err := m.tokenStore.AccessTokenValid(r.Context(), claims.UserID, claims.TokenID)
		if err != nil {
			response.Error(w, http.StatusInternalServerError, apperrors.CodeInternal, "Failed to validate token", nil)
			return
		}
		if !valid {
			response.Error(w, http.StatusUnauthorized, apperrors.CodeInvalidToken, "Token has been revoked", nil)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, UserEmailKey, claims.Email)
		ctx = context.WithValue(ctx, RoleKey, claims.Role)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserIDFromContext extracts user ID from context
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}

// GetUserEmailFromContext extracts user email from context
func GetUserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(UserEmailKey).(string)
	return email, ok
}

// GetRoleFromContext extracts the caller's role from context
func GetRoleFromContext(ctx context.Context) (entity.Role, bool) {
	role, ok := ctx.Value(RoleKey).(entity.Role)
	return role, ok
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}
