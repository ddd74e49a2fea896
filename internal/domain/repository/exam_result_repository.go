package repository

import (
	"context"

	"clinic-booking-api/internal/domain/entity"
	"clinic-booking-api/internal/domain/policy"

	"github.com/google/uuid"
)

type ExamResultRepository interface {
	Create(ctx context.Context, result *entity.ExamResult) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ExamResult, error)
	FindAll(ctx context.Context, scope policy.ListScope) ([]entity.ExamResult, error)
}
