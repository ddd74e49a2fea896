package repository

import (
	"context"

	"clinic-booking-api/internal/domain/entity"

	"github.com/google/uuid"
)

type PushTokenRepository interface {
	// Upsert inserts the token or, when the token value already exists,
	// reassigns owner and platform and reactivates it.
	Upsert(ctx context.Context, token *entity.PushToken) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PushToken, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
