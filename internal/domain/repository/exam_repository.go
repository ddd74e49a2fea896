package repository

import (
	"context"
	"time"

	"clinic-booking-api/internal/domain/entity"
	"clinic-booking-api/internal/domain/policy"

	"github.com/google/uuid"
)

type ExamRepository interface {
	Create(ctx context.Context, exam *entity.Exam) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Exam, error)
	FindAll(ctx context.Context, scope policy.ListScope) ([]entity.Exam, error)
	CountAtSlot(ctx context.Context, doctorID uuid.UUID, scheduledAt time.Time, includeCanceled bool) (int64, error)
	Update(ctx context.Context, exam *entity.Exam) error
	Cancel(ctx context.Context, id uuid.UUID) (int64, error)
}
