package middleware

import (
	"net/http"

	"clinic-booking-api/internal/domain/entity"
	"clinic-booking-api/pkg/apperrors"
	"clinic-booking-api/pkg/response"
)

// RequireRoles gates a route to the listed roles. Must run after
// Authenticate, which puts the role in the context.
func RequireRoles(allowedRoles ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Error(w, http.StatusUnauthorized, apperrors.CodeInvalidToken, "Role information not found", nil)
				return
			}

			allowed := false
			for _, allowedRole := range allowedRoles {
				if role == allowedRole {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Error(w, http.StatusForbidden, apperrors.CodeForbidden, "You don't have permission to access this resource", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRoles(entity.RoleAdmin)(next)
}
