package repository

import (
	"context"
	"time"

	"clinic-booking-api/internal/domain/entity"
	"clinic-booking-api/internal/domain/policy"

	"github.com/google/uuid"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	FindAll(ctx context.Context, scope policy.ListScope) ([]entity.Appointment, error)
	// CountAtSlot counts bookings holding the (doctor, scheduledAt) slot.
	// includeCanceled controls whether canceled bookings still occupy it.
	CountAtSlot(ctx context.Context, doctorID uuid.UUID, scheduledAt time.Time, includeCanceled bool) (int64, error)
	Update(ctx context.Context, appointment *entity.Appointment) error
	// Cancel flips status to CANCELED unless already canceled; returns
	// affected rows so double cancel can be detected without erroring.
	Cancel(ctx context.Context, id uuid.UUID) (int64, error)
}
