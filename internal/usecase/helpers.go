package usecase

import (
	"context"
	"errors"
	"strings"

	"clinic-booking-api/internal/delivery/http/middleware"
	"clinic-booking-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

var errNoActor = errors.New("user not found in context")

// actorFromContext pulls the authenticated caller out of the request context.
func actorFromContext(ctx context.Context) (uuid.UUID, entity.Role, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return uuid.Nil, "", errNoActor
	}
	role, ok := middleware.GetRoleFromContext(ctx)
	if !ok {
		return uuid.Nil, "", errNoActor
	}
	return userID, role, nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation whose constraint name contains the given fragment.
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
